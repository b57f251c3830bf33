package errors

import "fmt"

var (
	ErrMissingAdminEmail    = fmt.Errorf("administrator email is missing")
	ErrMissingAdminPassword = fmt.Errorf("administrator password is missing")
	ErrNoParticipants       = fmt.Errorf("no participants have been found")
	ErrMalformedLine        = fmt.Errorf("malformed participant line")
	ErrDuplicateParticipant = fmt.Errorf("duplicate participant id")
	ErrUnknownExclusion     = fmt.Errorf("exclusion references an unknown participant")
	ErrNotAllMessagesSent   = fmt.Errorf("failed to send all e-mails successfully")
	ErrUnsupportedContent   = fmt.Errorf("extra content must be a plain text file")
)
