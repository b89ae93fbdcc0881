package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() Form {
	return Form{
		CustomerName:    "Ali Raza",
		MobileNumber:    "03001234567",
		DeliveryAddress: "House 12, Street 4",
		City:            "Lahore",
		Province:        "Punjab",
	}
}

func TestValidate_ValidForm(t *testing.T) {
	assert.Empty(t, Validate(validForm()))
}

func TestValidate_MissingNameIsTheOnlyError(t *testing.T) {
	form := validForm()
	form.CustomerName = ""

	errs := Validate(form)
	require.Len(t, errs, 1)
	assert.Equal(t, "Name is required", errs["customer_name"])
}

func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		field   string
		mutate  func(*Form)
		message string
	}{
		{"customer_name", func(f *Form) { f.CustomerName = "   " }, "Name is required"},
		{"mobile_number", func(f *Form) { f.MobileNumber = "" }, "Mobile number is required"},
		{"delivery_address", func(f *Form) { f.DeliveryAddress = "\t" }, "Address is required"},
		{"city", func(f *Form) { f.City = "" }, "City is required"},
		{"province", func(f *Form) { f.Province = " " }, "Province is required"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			errs := Validate(form)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.message, errs[tt.field])
		})
	}
}

func TestValidate_Email(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"", true}, // email is optional
		{"a@b.c", true},
		{"customer@example.com", true},
		{"abc", false},
		{"a@b", false},
		{"@b.c", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			form := validForm()
			form.Email = tt.email

			errs := Validate(form)
			if tt.valid {
				assert.Empty(t, errs)
			} else {
				require.Len(t, errs, 1)
				assert.Equal(t, "Please enter a valid email", errs["email"])
			}
		})
	}
}

func TestValidate_PhoneNumbersAreFreeText(t *testing.T) {
	form := validForm()
	form.MobileNumber = "not a phone number at all"
	form.WhatsappNumber = "also anything"

	assert.Empty(t, Validate(form))
}

func TestValidate_AllFieldsMissing(t *testing.T) {
	errs := Validate(Form{})
	assert.Len(t, errs, 5)
}
