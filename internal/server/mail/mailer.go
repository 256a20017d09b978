// Package mail defines the code-delivery collaborator. The session manager
// only cares whether a send succeeded or failed; transport details stay here.
package mail

import "context"

// Mailer delivers one-time codes to a recipient identifier.
type Mailer interface {
	SendOtpCode(ctx context.Context, recipient, code string) error
}
