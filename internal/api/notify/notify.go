// Package notify delivers recovery codes to account holders out of band.
package notify

import (
	"context"
	"errors"
)

// ErrDeliveryFailed reports that the code could not be handed to the
// recipient. Recovery state stays intact so the caller may retry.
var ErrDeliveryFailed = errors.New("notify: delivery failed")

// RecoveryNotifier delivers a recovery code to a linked Discord account.
type RecoveryNotifier interface {
	SendRecoveryCode(ctx context.Context, discordID, code string) error
}
