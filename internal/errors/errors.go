package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// PolicyError represents a business-policy rejection that is neither a
// missing entity nor bad input: launching without a default payment method,
// or mutating a locked cluster.
type PolicyError struct {
	Message string
}

func (e *PolicyError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for PolicyError
func (e *PolicyError) Is(target error) bool {
	t, ok := target.(*PolicyError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// InvalidTransitionError rejects a job status change the state machine does
// not allow
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// ExternalProviderError wraps a failure from the payment provider. User-facing
// messages stay generic; the wrapped cause is for logs only.
type ExternalProviderError struct {
	Operation string
	Err       error
}

func (e *ExternalProviderError) Error() string {
	return fmt.Sprintf("payment provider request failed: %s", e.Operation)
}

func (e *ExternalProviderError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound  = &NotFoundError{Entity: "organization"}
	ErrMembershipNotFound    = &NotFoundError{Entity: "membership"}
	ErrClusterNotFound       = &NotFoundError{Entity: "cluster"}
	ErrJobNotFound           = &NotFoundError{Entity: "training job"}
	ErrBillingIntentNotFound = &NotFoundError{Entity: "billing intent"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this slug"}
	ErrMembershipExists   = &AlreadyExistsError{Entity: "membership", Context: "for this user"}
)

// Policy Errors
var (
	ErrNoDefaultPaymentMethod = &PolicyError{Message: "add a default payment method before launching jobs"}
	ErrClusterLocked          = &PolicyError{Message: "cluster is locked and cannot be deleted or have its identity changed"}
)

// Business Logic Errors
var (
	ErrInsufficientCredits = errors.New("insufficient promo credits")
	ErrInvalidPromoCode    = errors.New("invalid promo code")
	ErrBillingNotCommitted = errors.New("billing intent is not committed")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsPolicy checks if an error is a PolicyError
func IsPolicy(err error) bool {
	var policyErr *PolicyError
	return errors.As(err, &policyErr)
}

// IsInvalidTransition checks if an error is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var transitionErr *InvalidTransitionError
	return errors.As(err, &transitionErr)
}

// IsExternalProvider checks if an error is an ExternalProviderError
func IsExternalProvider(err error) bool {
	var providerErr *ExternalProviderError
	return errors.As(err, &providerErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewPolicyError creates a new PolicyError
func NewPolicyError(message string) error {
	return &PolicyError{Message: message}
}

// NewInvalidTransitionError creates a new InvalidTransitionError
func NewInvalidTransitionError(from, to string) error {
	return &InvalidTransitionError{From: from, To: to}
}

// NewExternalProviderError wraps a payment provider failure
func NewExternalProviderError(operation string, err error) error {
	return &ExternalProviderError{Operation: operation, Err: err}
}
