// Package logging renders logrus entries as indented progress bullets.
package logging

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// ActionField marks an entry as a top-level step.
const ActionField = "action"

// BulletFormatter formats log entries as hierarchical bullets.
//
// Entries with an "action" field produce top-level bullets prefixed by
// "  * ". Info entries without one become sub-bullets prefixed by "    * ",
// warnings use "    ! " and errors "  x ". Debug entries, typically
// external tool output, are indented without a marker. Continuation lines
// of multi-line messages align under the first line. Key-value fields
// (excluding "action") are appended as sorted key=value pairs.
type BulletFormatter struct{}

func (f *BulletFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var buf bytes.Buffer

	if action, ok := entry.Data[ActionField]; ok {
		fmt.Fprintf(&buf, "  * %v%s\n", action, formatFields(entry.Data, ActionField))
		return buf.Bytes(), nil
	}

	prefix := linePrefix(entry.Level)
	indent := strings.Repeat(" ", len(prefix))
	lines := strings.Split(strings.TrimRight(entry.Message, "\n"), "\n")

	for i, line := range lines {
		if i == 0 {
			buf.WriteString(prefix)
		} else {
			buf.WriteString(indent)
		}
		buf.WriteString(line)
		if i == len(lines)-1 {
			buf.WriteString(formatFields(entry.Data))
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func linePrefix(level logrus.Level) string {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return "  x "
	case logrus.WarnLevel:
		return "    ! "
	case logrus.InfoLevel:
		return "    * "
	default:
		return "      "
	}
}

// formatFields returns a formatted string of key=value pairs, excluding
// the specified skip keys. Returns empty string if no fields remain.
func formatFields(fields logrus.Fields, skip ...string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		skipped := false
		for _, s := range skip {
			if k == s {
				skipped = true
				break
			}
		}
		if !skipped {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return "  " + strings.Join(parts, " ")
}
