package httperr

var messages = map[string]string{
	"missing_date_or_time":   "Select a date and time.",
	"date_in_past":           "You cannot book a date in the past.",
	"invalid_date_or_time":   "Invalid date or time.",
	"invalid_slot":           "That time is not one of the available slots.",
	"outside_booking_window": "Date outside booking window.",
	"slot_taken":             "This time slot is already taken.",
	"pet_not_found":          "Pet not found.",
	"user_not_found":         "User not found.",
	"appointment_not_found":  "Unauthorized or appointment not found.",
	"appointment_in_past":    "Past appointments cannot be cancelled.",
	"invalid_state":          "This appointment can no longer be changed.",
	"invalid_status":         "Invalid status.",
	"notes_too_long":         "Notes must be 255 characters or fewer.",
	"invalid_pet":            "Invalid input. Please check all fields.",
	"invalid_image":          "Only image files are allowed!",
	"image_too_large":        "Images must be 5MB or smaller.",
	"pet_has_appointments":   "Cannot delete a pet with active appointments. Cancel them first.",
	"user_has_appointments":  "Cannot delete user with existing appointments. Cancel appointments first.",
	"missing_fields":         "All fields are required.",
	"invalid_form":           "The form could not be read. Please try again.",
	"password_too_short":     "Password must be at least 6 characters.",
	"invalid_email":          "Please enter a valid email address.",
	"invalid_email_domain":   "The email domain does not appear to be valid.",
	"email_taken":            "Email already in use.",
	"invalid_credentials":    "Invalid credentials.",
	"login_required":         "Please log in to continue.",
	"admin_only":             "Administrator access required.",
	"timeout":                "The server took too long to respond. Please try again.",
}

const genericMessage = "Something went wrong. Please try again."

// Message returns the user-facing text for err. Internal errors never leak
// their detail.
func Message(err error) string {
	if msg, ok := messages[CodeOf(err)]; ok {
		return msg
	}
	return genericMessage
}
