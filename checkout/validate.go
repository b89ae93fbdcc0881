package checkout

import (
	"regexp"
	"strings"
)

// Form holds the customer-supplied shipping and contact details.
// WhatsappNumber and Email are optional; an empty WhatsappNumber falls
// back to MobileNumber when the order message is composed.
type Form struct {
	CustomerName    string `json:"customer_name"`
	MobileNumber    string `json:"mobile_number"`
	WhatsappNumber  string `json:"whatsapp_number"`
	Email           string `json:"email"`
	DeliveryAddress string `json:"delivery_address"`
	City            string `json:"city"`
	Province        string `json:"province"`
}

// Deliberately loose: any non-space local@domain.tld shape passes.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Validate returns field-level error messages keyed by JSON field name.
// An empty map means the form is valid. Rules are evaluated per field;
// phone numbers are not format-checked. Validate never touches storage.
func Validate(form Form) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(form.CustomerName) == "" {
		errs["customer_name"] = "Name is required"
	}
	if strings.TrimSpace(form.MobileNumber) == "" {
		errs["mobile_number"] = "Mobile number is required"
	}
	if strings.TrimSpace(form.DeliveryAddress) == "" {
		errs["delivery_address"] = "Address is required"
	}
	if strings.TrimSpace(form.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(form.Province) == "" {
		errs["province"] = "Province is required"
	}
	if form.Email != "" && !emailPattern.MatchString(form.Email) {
		errs["email"] = "Please enter a valid email"
	}

	return errs
}
