package schema

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Subschema entry attribute names recognized by the loader.
const (
	attrAttributeTypes = "attributetypes"
	attrObjectClasses  = "objectclasses"
	attrMatchingRules  = "matchingrules"
	attrLDAPSyntaxes   = "ldapsyntaxes"
)

// LoadFile reads schema definitions from an LDIF file and builds a
// schema from them on top of the default definitions.
func LoadFile(path string, opts ...BuilderOption) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema file: %w", err)
	}
	defer f.Close()
	return Load(f, opts...)
}

// Load reads schema definitions from LDIF-formatted input. Each
// attributeTypes, objectClasses, matchingRules and ldapSyntaxes value is
// parsed as an RFC 4512 definition; other attributes are ignored. The
// loaded definitions are built together with the default schema, so
// references to standard types resolve without restating them.
func Load(r io.Reader, opts ...BuilderOption) (*Schema, error) {
	b := NewBuilder(opts...)
	for _, def := range defaultSyntaxes() {
		b.AddSyntax(def)
	}
	for _, def := range defaultMatchingRules() {
		b.AddMatchingRule(def)
	}
	for _, raw := range defaultAttributeTypes {
		b.AddAttributeTypeDefinition(raw)
	}
	for _, raw := range defaultObjectClasses {
		b.AddObjectClassDefinition(raw)
	}

	if err := feedLDIF(r, b); err != nil {
		return nil, err
	}

	s, err := b.Build()
	if err != nil {
		return nil, err
	}
	for _, warn := range s.Warnings() {
		logrus.Warnf("schema: excluded definition: %v", warn)
	}
	return s, nil
}

// feedLDIF streams attribute lines from LDIF input into the builder.
// Lines starting with a space continue the previous line and base64
// values (double colon) are decoded before parsing.
func feedLDIF(r io.Reader, b *Builder) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var logical string
	flush := func() error {
		line := logical
		logical = ""
		if line == "" || strings.HasPrefix(line, "#") {
			return nil
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil
		}
		if strings.HasPrefix(value, ":") {
			decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(value[1:]))
			if err != nil {
				return fmt.Errorf("decode base64 value for %s: %w", name, err)
			}
			value = string(decoded)
		}
		value = strings.TrimSpace(value)
		if value == "" {
			return nil
		}
		switch strings.ToLower(strings.TrimSpace(name)) {
		case attrAttributeTypes:
			b.AddAttributeTypeDefinition(value)
		case attrObjectClasses:
			b.AddObjectClassDefinition(value)
		case attrMatchingRules:
			b.AddMatchingRuleDefinition(value)
		case attrLDAPSyntaxes:
			b.AddSyntaxDefinition(value)
		default:
			logrus.Debugf("schema: ignoring LDIF attribute %q", name)
		}
		return nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, " ") {
			// A continuation needs a line to continue; stray indented
			// lines at the start of the input or after a blank line are
			// dropped.
			if logical == "" {
				continue
			}
			logical += line[1:]
			continue
		}
		if err := flush(); err != nil {
			return err
		}
		logical = strings.TrimRight(line, "\r")
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read schema input: %w", err)
	}
	return flush()
}
