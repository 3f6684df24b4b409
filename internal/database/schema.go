package database

import (
	"context"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/futclub/clubmanager/internal/platform/logging"
)

// SchemaLoader applies the bootstrap and seed scripts against the store.
// Scripts are plain text with `--` line comments and trigger definitions
// delimited by BEGIN ... END;. Re-applying a script is safe for additive
// schemas: units whose DDL target already exists are skipped.
type SchemaLoader struct {
	db     *DB
	logger *logging.Logger
}

func NewSchemaLoader(db *DB, logger *logging.Logger) *SchemaLoader {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &SchemaLoader{db: db, logger: logger}
}

// ApplyFile reads the script at path and applies it.
func (l *SchemaLoader) ApplyFile(ctx context.Context, path string) error {
	script, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read script %s", path)
	}
	if err := l.Apply(ctx, string(script)); err != nil {
		return errors.Wrapf(err, "apply script %s", path)
	}
	return nil
}

// Apply executes every unit of the script in source order. Duplicate-object
// failures are swallowed so an initialized store can be bootstrapped again;
// any other failure aborts and propagates.
func (l *SchemaLoader) Apply(ctx context.Context, script string) error {
	units := SplitStatements(script)

	for _, unit := range units {
		if unit == "" {
			continue
		}
		if _, err := l.db.conn.ExecContext(ctx, unit); err != nil {
			if IsDuplicateObject(err) {
				l.logger.DebugContext(ctx, "object already exists, skipping", "unit", truncateUnit(unit))
				continue
			}
			return errors.Wrapf(err, "execute unit %q", truncateUnit(unit))
		}
	}

	l.logger.InfoContext(ctx, "script applied", "units", len(units))
	return nil
}

// SplitStatements splits a script into executable units. A `;` terminates a
// unit except inside a trigger body: once the unit contains both CREATE
// TRIGGER and BEGIN (case-insensitive), it only ends when it ends with
// "END;". Any trailing non-empty text forms a final unit.
func SplitStatements(script string) []string {
	text := stripComments(script)

	var (
		units     []string
		buf       strings.Builder
		inTrigger bool
	)

	flush := func() {
		if unit := strings.TrimSpace(buf.String()); unit != "" {
			units = append(units, unit)
		}
		buf.Reset()
	}

	for i := 0; i < len(text); i++ {
		buf.WriteByte(text[i])

		upper := strings.ToUpper(buf.String())
		if !inTrigger && strings.Contains(upper, "CREATE TRIGGER") && strings.Contains(upper, "BEGIN") {
			inTrigger = true
		}

		if inTrigger && strings.HasSuffix(upper, "END;") {
			inTrigger = false
			flush()
			continue
		}
		if !inTrigger && text[i] == ';' {
			flush()
		}
	}
	flush()

	return units
}

// stripComments removes `--` line comments and blank lines, joining what
// remains into a single stream.
func stripComments(script string) string {
	var clean strings.Builder
	for _, line := range strings.Split(script, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		if idx := strings.Index(line, "--"); idx > 0 {
			line = strings.TrimSpace(line[:idx])
		}
		clean.WriteString(line)
		clean.WriteString(" ")
	}
	return clean.String()
}

func truncateUnit(unit string) string {
	const max = 80
	if len(unit) <= max {
		return unit
	}
	return unit[:max] + "..."
}
