// Package env expands env(VAR) references inside YAML configuration values.
//
// Two forms are supported:
//
//	env(NAME)            value of $NAME, left untouched when unset
//	env(NAME:-fallback)  value of $NAME, or fallback when unset or empty
package env

import (
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml/ast"
)

// reference matches env(NAME) and env(NAME:-fallback).
var reference = regexp.MustCompile(`env\(([A-Za-z_][A-Za-z0-9_]*)(?::-([^)]*))?\)`)

// unsafeChars are control characters that must not reach paths or plist
// strings. Tab and newline are allowed.
var unsafeChars = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]`)

// SubstituteEnvVarsNode expands references in the scalar values below node.
// Mapping keys are never rewritten.
func SubstituteEnvVarsNode(node ast.Node) error {
	if node == nil {
		return nil
	}
	return walk(node, true)
}

func walk(node ast.Node, isValue bool) error {
	switch n := node.(type) {
	case *ast.DocumentNode:
		return walkOptional(n.Body, true)
	case *ast.MappingNode:
		for _, v := range n.Values {
			if err := walk(v, isValue); err != nil {
				return err
			}
		}
	case *ast.MappingValueNode:
		return walkOptional(n.Value, true)
	case *ast.SequenceNode:
		for _, v := range n.Values {
			if err := walk(v, true); err != nil {
				return err
			}
		}
	case *ast.TagNode:
		return walkOptional(n.Value, isValue)
	case *ast.AnchorNode:
		return walkOptional(n.Value, isValue)
	case *ast.StringNode:
		if !isValue {
			return nil
		}
		expanded, err := Expand(n.Value)
		if err != nil {
			return err
		}
		n.Value = expanded
	case *ast.LiteralNode:
		if !isValue || n.Value == nil {
			return nil
		}
		expanded, err := Expand(n.Value.Value)
		if err != nil {
			return err
		}
		n.Value.Value = expanded
	}
	return nil
}

func walkOptional(node ast.Node, isValue bool) error {
	if node == nil {
		return nil
	}
	return walk(node, isValue)
}

// Expand replaces every reference in s. Unset variables without a fallback
// are left as written so CheckResolved can name them later.
func Expand(s string) (string, error) {
	var firstErr error
	out := reference.ReplaceAllStringFunc(s, func(match string) string {
		sub := reference.FindStringSubmatch(match)
		name, fallback := sub[1], sub[2]
		hasFallback := len(match) > len("env("+name+")")

		value, ok := os.LookupEnv(name)
		if (!ok || value == "") && hasFallback {
			return fallback
		}
		if !ok {
			return match
		}
		if unsafeChars.MatchString(value) {
			if firstErr == nil {
				firstErr = fmt.Errorf("environment variable %s contains disallowed control characters", name)
			}
			return ""
		}
		return value
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

// CheckResolved returns an error naming the first env(...) reference still
// present in value, e.g. "sign.identity: environment variable SIGN_ID is not set".
func CheckResolved(value, field string) error {
	if m := reference.FindStringSubmatch(value); m != nil {
		return fmt.Errorf("%s: environment variable %s is not set", field, m[1])
	}
	return nil
}
