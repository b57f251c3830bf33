// Package roster parses the plain-text configuration file describing one
// gift exchange: the administrator credentials followed by the participants.
package roster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"santa-lab/domain"
	"santa-lab/errors"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

// Roster is the parsed configuration: administrator credentials plus the
// participant registry. The password is forwarded verbatim to SMTP
// authentication, it is never stored anywhere.
type Roster struct {
	AdminEmail    string
	AdminPassword string
	Registry      *domain.Registry
}

type administratorRecord struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type participantRecord struct {
	ID    string `validate:"required"`
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

// Load reads and parses the roster configuration file.
func Load(path string) (Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return Roster{}, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads the line-oriented roster format: administrator e-mail on the
// first line, application password on the second, then one participant per
// non-blank line as "id, name, email, (excluded; excluded; ...)".
func Parse(r io.Reader) (Roster, error) {
	scanner := bufio.NewScanner(r)

	admin := administratorRecord{
		Email:    nextLine(scanner),
		Password: nextLine(scanner),
	}
	if admin.Email == "" {
		return Roster{}, errors.ErrMissingAdminEmail
	}
	if admin.Password == "" {
		return Roster{}, errors.ErrMissingAdminPassword
	}
	if err := validate.Struct(admin); err != nil {
		return Roster{}, fmt.Errorf("invalid administrator entry: %w", err)
	}

	var participants []domain.Participant
	line := 2
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		participant, err := parseParticipant(raw, line)
		if err != nil {
			return Roster{}, err
		}
		participants = append(participants, participant)
	}
	if err := scanner.Err(); err != nil {
		return Roster{}, fmt.Errorf("failed to read roster: %w", err)
	}

	registry, err := domain.NewRegistry(participants)
	if err != nil {
		return Roster{}, err
	}

	return Roster{
		AdminEmail:    admin.Email,
		AdminPassword: admin.Password,
		Registry:      registry,
	}, nil
}

// nextLine consumes exactly one line. The two credential lines are
// positional, a blank first line is a missing administrator e-mail rather
// than something to skip.
func nextLine(scanner *bufio.Scanner) string {
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func parseParticipant(raw string, line int) (domain.Participant, error) {
	fields := strings.Split(raw, ",")
	if len(fields) != 4 {
		return domain.Participant{}, fmt.Errorf(
			"%w: line %d: expected 4 comma-separated fields in %q, got %d",
			errors.ErrMalformedLine, line, raw, len(fields),
		)
	}

	fields = lo.Map(fields, func(field string, _ int) string {
		return strings.TrimSpace(field)
	})

	record := participantRecord{ID: fields[0], Name: fields[1], Email: fields[2]}
	if err := validate.Struct(record); err != nil {
		return domain.Participant{}, fmt.Errorf("%w: line %d: %v", errors.ErrMalformedLine, line, err)
	}

	exclusions, err := parseExclusions(fields[3], line)
	if err != nil {
		return domain.Participant{}, err
	}

	return domain.Participant{
		ID:         domain.ParticipantID(fields[0]),
		Name:       fields[1],
		Email:      fields[2],
		Exclusions: exclusions,
	}, nil
}

// parseExclusions reads "(id; id; ...)". The parentheses are required even
// when the list is empty.
func parseExclusions(field string, line int) (domain.Set, error) {
	if len(field) < 2 || field[0] != '(' || field[len(field)-1] != ')' {
		return nil, fmt.Errorf(
			"%w: line %d: exclusions %q must be wrapped in parentheses",
			errors.ErrMalformedLine, line, field,
		)
	}

	inner := field[1 : len(field)-1]
	ids := lo.FilterMap(strings.Split(inner, ";"), func(id string, _ int) (domain.ParticipantID, bool) {
		trimmed := strings.TrimSpace(id)
		return domain.ParticipantID(trimmed), trimmed != ""
	})
	return domain.NewSet(ids...), nil
}
