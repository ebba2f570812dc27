package schema

import "strings"

// Parsers for RFC 4512 definition strings. Each parser returns the
// declared field set of one definition; cross-references stay unresolved
// until the definitions are built into a Schema. The input string is
// preserved in the returned definition so that re-serialization is
// byte-identical to what was loaded.

// splitDefinition strips the outer parentheses and tokenizes the body.
func splitDefinition(s, what string) ([]string, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return nil, newDefinitionError(KindMalformedDefinition, what, "definition is not parenthesized")
	}
	tokens, err := tokenize(strings.TrimSpace(s[1 : len(s)-1]))
	if err != nil {
		return nil, newDefinitionError(KindMalformedDefinition, what, "%v", err)
	}
	if len(tokens) == 0 {
		return nil, newDefinitionError(KindMalformedDefinition, what, "definition has no OID")
	}
	return tokens, nil
}

// ParseAttributeType parses an RFC 4512 attribute type definition, e.g.
//
//	( 2.5.4.3 NAME ( 'cn' 'commonName' ) DESC 'Common name' SUP name )
//
// Unknown keywords other than X- extensions are ignored. The
// X-APPROX-MATCHING-RULE extension feeds the approximate rule slot
// instead of the generic extension list.
func ParseAttributeType(s string) (AttributeTypeDef, error) {
	var def AttributeTypeDef
	tokens, err := splitDefinition(s, "attribute type")
	if err != nil {
		return def, err
	}

	def.OID = tokens[0]
	def.Usage = UserApplications
	def.RawDefinition = strings.TrimSpace(s)

	i := 1
	next := func(keyword string) (string, error) {
		i++
		if i >= len(tokens) {
			return "", newDefinitionError(KindMalformedDefinition, def.OID, "%s has no value", keyword)
		}
		return tokens[i], nil
	}
	for i < len(tokens) {
		tok := tokens[i]
		switch keyword := strings.ToUpper(tok); keyword {
		case "NAME":
			v, err := next(keyword)
			if err != nil {
				return def, err
			}
			def.Names = parseQuotedValues(v)
		case "DESC":
			v, err := next(keyword)
			if err != nil {
				return def, err
			}
			def.Description = unquote(v)
		case "OBSOLETE":
			def.Obsolete = true
		case "SUP":
			v, err := next(keyword)
			if err != nil {
				return def, err
			}
			def.SuperiorOID = unquote(v)
		case "EQUALITY":
			v, err := next(keyword)
			if err != nil {
				return def, err
			}
			def.EqualityRuleOID = unquote(v)
		case "ORDERING":
			v, err := next(keyword)
			if err != nil {
				return def, err
			}
			def.OrderingRuleOID = unquote(v)
		case "SUBSTR":
			v, err := next(keyword)
			if err != nil {
				return def, err
			}
			def.SubstringRuleOID = unquote(v)
		case "SYNTAX":
			v, err := next(keyword)
			if err != nil {
				return def, err
			}
			def.SyntaxOID = parseSyntaxOID(v)
		case "SINGLE-VALUE":
			def.SingleValue = true
		case "COLLECTIVE":
			def.Collective = true
		case "NO-USER-MODIFICATION":
			def.NoUserModification = true
		case "USAGE":
			v, err := next(keyword)
			if err != nil {
				return def, err
			}
			usage, ok := ParseAttributeUsage(unquote(v))
			if !ok {
				return def, newDefinitionError(KindMalformedDefinition, def.OID, "unknown usage %q", v)
			}
			def.Usage = usage
		default:
			if strings.HasPrefix(keyword, "X-") {
				v, err := next(tok)
				if err != nil {
					return def, err
				}
				values := parseQuotedValues(v)
				if keyword == schemaPropertyApproxRule {
					if len(values) > 0 {
						def.ApproximateRuleOID = values[0]
					}
				} else {
					def.ExtraProperties = append(def.ExtraProperties, Property{Name: tok, Values: values})
				}
			}
		}
		i++
	}
	return def, nil
}

// ParseObjectClass parses an RFC 4512 object class definition, e.g.
//
//	( 2.5.6.6 NAME 'person' SUP top STRUCTURAL MUST ( sn $ cn ) )
//
// The kind defaults to STRUCTURAL when no kind keyword is present.
func ParseObjectClass(s string) (ObjectClassDef, error) {
	var def ObjectClassDef
	tokens, err := splitDefinition(s, "object class")
	if err != nil {
		return def, err
	}

	def.OID = tokens[0]
	def.Kind = ObjectClassStructural
	def.RawDefinition = strings.TrimSpace(s)

	i := 1
	next := func(keyword string) (string, error) {
		i++
		if i >= len(tokens) {
			return "", newDefinitionError(KindMalformedDefinition, def.OID, "%s has no value", keyword)
		}
		return tokens[i], nil
	}
	for i < len(tokens) {
		tok := tokens[i]
		switch keyword := strings.ToUpper(tok); keyword {
		case "NAME":
			v, err := next(keyword)
			if err != nil {
				return def, err
			}
			def.Names = parseQuotedValues(v)
		case "DESC":
			v, err := next(keyword)
			if err != nil {
				return def, err
			}
			def.Description = unquote(v)
		case "OBSOLETE":
			def.Obsolete = true
		case "SUP":
			v, err := next(keyword)
			if err != nil {
				return def, err
			}
			def.SuperiorOID = unquote(v)
		case "ABSTRACT":
			def.Kind = ObjectClassAbstract
		case "STRUCTURAL":
			def.Kind = ObjectClassStructural
		case "AUXILIARY":
			def.Kind = ObjectClassAuxiliary
		case "MUST":
			v, err := next(keyword)
			if err != nil {
				return def, err
			}
			def.MustOIDs = parseOIDList(v)
		case "MAY":
			v, err := next(keyword)
			if err != nil {
				return def, err
			}
			def.MayOIDs = parseOIDList(v)
		default:
			if strings.HasPrefix(keyword, "X-") {
				v, err := next(tok)
				if err != nil {
					return def, err
				}
				def.ExtraProperties = append(def.ExtraProperties, Property{Name: tok, Values: parseQuotedValues(v)})
			}
		}
		i++
	}
	return def, nil
}

// ParseMatchingRule parses an RFC 4512 matching rule definition, e.g.
//
//	( 2.5.13.2 NAME 'caseIgnoreMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )
//
// Definition strings do not carry the rule's comparison slot, so it is
// inferred from the RFC 4517 naming convention: names ending in
// OrderingMatch are ordering rules and names containing Substrings are
// substring rules; everything else is treated as an equality rule.
func ParseMatchingRule(s string) (MatchingRuleDef, error) {
	var def MatchingRuleDef
	tokens, err := splitDefinition(s, "matching rule")
	if err != nil {
		return def, err
	}

	def.OID = tokens[0]
	def.RawDefinition = strings.TrimSpace(s)

	i := 1
	next := func(keyword string) (string, error) {
		i++
		if i >= len(tokens) {
			return "", newDefinitionError(KindMalformedDefinition, def.OID, "%s has no value", keyword)
		}
		return tokens[i], nil
	}
	for i < len(tokens) {
		tok := tokens[i]
		switch keyword := strings.ToUpper(tok); keyword {
		case "NAME":
			v, err := next(keyword)
			if err != nil {
				return def, err
			}
			def.Names = parseQuotedValues(v)
		case "DESC":
			v, err := next(keyword)
			if err != nil {
				return def, err
			}
			def.Description = unquote(v)
		case "OBSOLETE":
			def.Obsolete = true
		case "SYNTAX":
			v, err := next(keyword)
			if err != nil {
				return def, err
			}
			def.SyntaxOID = parseSyntaxOID(v)
		default:
			if strings.HasPrefix(keyword, "X-") {
				v, err := next(tok)
				if err != nil {
					return def, err
				}
				def.ExtraProperties = append(def.ExtraProperties, Property{Name: tok, Values: parseQuotedValues(v)})
			}
		}
		i++
	}
	def.Kind = matchingRuleKindForName(nameOrOID(def.Names, def.OID))
	return def, nil
}

func matchingRuleKindForName(name string) MatchingRuleKind {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, "orderingmatch"):
		return OrderingMatch
	case strings.Contains(lower, "substrings"):
		return SubstringMatch
	case strings.Contains(lower, "approx"):
		return ApproximateMatch
	default:
		return EqualityMatch
	}
}

// ParseSyntax parses an RFC 4512 syntax definition, e.g.
//
//	( 1.3.6.1.4.1.1466.115.121.1.15 DESC 'Directory String' )
func ParseSyntax(s string) (SyntaxDef, error) {
	var def SyntaxDef
	tokens, err := splitDefinition(s, "syntax")
	if err != nil {
		return def, err
	}

	def.OID = tokens[0]
	def.RawDefinition = strings.TrimSpace(s)

	i := 1
	next := func(keyword string) (string, error) {
		i++
		if i >= len(tokens) {
			return "", newDefinitionError(KindMalformedDefinition, def.OID, "%s has no value", keyword)
		}
		return tokens[i], nil
	}
	for i < len(tokens) {
		tok := tokens[i]
		switch keyword := strings.ToUpper(tok); keyword {
		case "DESC":
			v, err := next(keyword)
			if err != nil {
				return def, err
			}
			def.Description = unquote(v)
		default:
			if strings.HasPrefix(keyword, "X-") {
				v, err := next(tok)
				if err != nil {
					return def, err
				}
				def.ExtraProperties = append(def.ExtraProperties, Property{Name: tok, Values: parseQuotedValues(v)})
			}
		}
		i++
	}
	return def, nil
}

// tokenize splits a definition body into tokens. Quoted strings keep
// their quotes, parenthesized groups become a single token with the
// outer parentheses removed, and $ separators inside groups are kept for
// parseOIDList.
func tokenize(s string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	inQuote := false
	parenDepth := 0

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if inQuote {
			current.WriteByte(ch)
			if ch == '\'' {
				inQuote = false
			}
			continue
		}

		switch ch {
		case '\'':
			inQuote = true
			current.WriteByte(ch)
		case '(':
			if parenDepth > 0 {
				current.WriteByte(ch)
			}
			parenDepth++
		case ')':
			parenDepth--
			if parenDepth < 0 {
				return nil, newDefinitionError(KindMalformedDefinition, "?", "unbalanced parentheses")
			}
			if parenDepth > 0 {
				current.WriteByte(ch)
			} else {
				flush()
			}
		case ' ', '\t', '\n', '\r':
			if parenDepth > 0 {
				current.WriteByte(ch)
			} else {
				flush()
			}
		default:
			current.WriteByte(ch)
		}
	}

	if inQuote {
		return nil, newDefinitionError(KindMalformedDefinition, "?", "unterminated quoted string")
	}
	if parenDepth != 0 {
		return nil, newDefinitionError(KindMalformedDefinition, "?", "unterminated parentheses")
	}
	flush()
	return tokens, nil
}

// parseQuotedValues extracts the quoted strings from a NAME or extension
// value: either a single 'value' or a ( 'v1' 'v2' ) group. A bare
// unquoted token is returned as-is.
func parseQuotedValues(s string) []string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "'") {
		if s == "" {
			return nil
		}
		return []string{s}
	}

	var values []string
	var current strings.Builder
	inQuote := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '\'' {
			if inQuote {
				values = append(values, current.String())
				current.Reset()
			}
			inQuote = !inQuote
			continue
		}
		if inQuote {
			current.WriteByte(ch)
		}
	}
	return values
}

// parseOIDList splits a MUST/MAY value: either a single name or a
// ( a $ b $ c ) group.
func parseOIDList(s string) []string {
	var oids []string
	for _, part := range strings.Split(s, "$") {
		part = unquote(strings.TrimSpace(part))
		if part != "" {
			oids = append(oids, part)
		}
	}
	return oids
}

// unquote removes surrounding single quotes.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}

// parseSyntaxOID strips a length bound like {256} from a SYNTAX value.
func parseSyntaxOID(s string) string {
	s = unquote(s)
	if idx := strings.Index(s, "{"); idx != -1 {
		return s[:idx]
	}
	return s
}
