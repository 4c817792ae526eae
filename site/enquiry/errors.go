package enquiry

import (
	"errors"

	"github.com/previz/site/pkg/mailer"
	"github.com/previz/site/pkg/metrics"
	"github.com/previz/site/pkg/validator"
)

var (
	ErrNotConfigured = errors.New("enquiry: mail relay is not configured")
	ErrDelivery      = errors.New("enquiry: delivery failed")
)

// ConfigError reports missing relay configuration. Message is safe to show
// to the visitor and names the settings that must be provided.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

func (e *ConfigError) Is(target error) bool { return target == ErrNotConfigured }

// DeliveryError wraps the provider error of a failed send.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string { return e.Message() }

func (e *DeliveryError) Unwrap() error { return e.Err }

func (e *DeliveryError) Is(target error) bool { return target == ErrDelivery }

// Message is the underlying provider message with the mailer's generic
// sentinels removed.
func (e *DeliveryError) Message() string {
	if msg := cause(e.Err).Error(); msg != "" {
		return msg
	}
	return mailer.ErrSendFailed.Error()
}

// cause descends through errors.Join trees and skips the mailer sentinels.
func cause(err error) error {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return err
	}
	for _, e := range joined.Unwrap() {
		if e == nil || e == mailer.ErrSendFailed || e == mailer.ErrRenderFailed {
			continue
		}
		return cause(e)
	}
	return err
}

// Outcome classifies the error returned by Service.Submit for metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeAccepted
	case validator.IsValidationError(err):
		return metrics.OutcomeInvalid
	case errors.Is(err, ErrNotConfigured):
		return metrics.OutcomeConfigError
	default:
		return metrics.OutcomeProviderError
	}
}

// AsConfigError returns the ConfigError in err's chain, or nil.
func AsConfigError(err error) *ConfigError {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}

// AsDeliveryError returns the DeliveryError in err's chain, or nil.
func AsDeliveryError(err error) *DeliveryError {
	var de *DeliveryError
	if errors.As(err, &de) {
		return de
	}
	return nil
}
