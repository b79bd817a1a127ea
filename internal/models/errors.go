package models

import "errors"

var (
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden is returned when the caller's role or ownership does not
	// permit the requested action.
	ErrForbidden = errors.New("you do not have permission to perform this action")

	// ErrInvalidTransition is returned when a status change does not follow
	// the booking lifecycle graph.
	ErrInvalidTransition = errors.New("booking cannot move to the requested status")

	// ErrBookingNotPending is returned when an edit or delete is attempted
	// on a booking that a vendor is already engaged with.
	ErrBookingNotPending = errors.New("booking can only be modified while it is pending")

	// ErrBookingNotAssigned is returned when a cancel is attempted on a
	// booking that has no vendor engaged.
	ErrBookingNotAssigned = errors.New("booking is not currently assigned to a vendor")

	// ErrBookingNotAssignable is returned when an admin tries to assign a
	// vendor onto a completed, rejected or cancelled booking.
	ErrBookingNotAssignable = errors.New("booking is no longer open for vendor assignment")

	// ErrPaymentModeRequired is returned when a booking is completed without
	// a payment mode.
	ErrPaymentModeRequired = errors.New("payment mode is required to complete a booking")

	// ErrPaymentModeNotAllowed is returned when a payment mode is supplied on
	// a transition other than completion.
	ErrPaymentModeNotAllowed = errors.New("payment mode is only accepted when completing a booking")

	// ErrRejectionReasonRequired is returned when a booking is rejected
	// without a reason.
	ErrRejectionReasonRequired = errors.New("a reason is required to reject a booking")

	// ErrBookingNotCompleted is returned when a review or invoice is
	// requested for a booking that has not completed.
	ErrBookingNotCompleted = errors.New("booking has not been completed")

	// ErrReviewExists is returned when a customer reviews the same booking twice.
	ErrReviewExists = errors.New("a review has already been submitted for this booking")

	// ErrInvoiceVendorMissing is returned when invoice generation is attempted
	// for a booking with no resolved vendor.
	ErrInvoiceVendorMissing = errors.New("booking has no vendor, invoice cannot be generated")

	// ErrVendorExists is returned when onboarding a user who already has a
	// vendor profile.
	ErrVendorExists = errors.New("user already has a vendor profile")

	// ErrVendorInactive is returned when a deactivated vendor is assigned to
	// a booking.
	ErrVendorInactive = errors.New("vendor is not active")

	// ErrCategoryInUse is returned when deleting a category that booking
	// line items still reference.
	ErrCategoryInUse = errors.New("category is referenced by existing bookings")
)

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}
