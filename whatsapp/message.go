// Package whatsapp composes the order handoff message and deep link.
// Composition is pure: identical inputs always produce identical output.
package whatsapp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Luxera/luxera-api/checkout"
)

// ComposeMessage renders the order confirmation text sent over WhatsApp.
// The template is fixed: missing WhatsApp numbers fall back to the mobile
// number and a missing email renders as "Not provided".
func ComposeMessage(form checkout.Form, productName string, quantity int, totalAmount int) string {
	whatsappNumber := form.WhatsappNumber
	if whatsappNumber == "" {
		whatsappNumber = form.MobileNumber
	}

	email := form.Email
	if email == "" {
		email = "Not provided"
	}

	var b strings.Builder
	b.WriteString("*🎯 New Order from LUXERA Website! 🎯\n\n")
	fmt.Fprintf(&b, "*Customer Name:* %s\n", form.CustomerName)
	fmt.Fprintf(&b, "*Mobile Number:* %s\n", form.MobileNumber)
	fmt.Fprintf(&b, "*WhatsApp Number:* %s\n", whatsappNumber)
	fmt.Fprintf(&b, "*Email:* %s\n", email)
	fmt.Fprintf(&b, "*Address:* %s, %s, %s\n\n", form.DeliveryAddress, form.City, form.Province)
	b.WriteString("*--- Order Summary ---*\n")
	fmt.Fprintf(&b, "*Product:* %s\n", productName)
	fmt.Fprintf(&b, "*Quantity:* %d\n", quantity)
	b.WriteString("*Add-on:* Not applicable\n\n")
	fmt.Fprintf(&b, "*Total Bill:* PKR %s\n\n", FormatAmount(totalAmount))
	b.WriteString("-----------------------------------\n")
	b.WriteString("This order has been confirmed by the customer.\n\n")
	b.WriteString("*Ordered from:* LUXERA")

	return b.String()
}

// ComposeLink builds the deep link that opens a WhatsApp chat with the
// given destination number, pre-filled with the message.
func ComposeLink(phone, message string) string {
	return "https://api.whatsapp.com/send/?phone=" + phone +
		"&text=" + url.QueryEscape(message) +
		"&type=phone_number&app_absent=0"
}

// FormatAmount renders a PKR amount with thousands separators, e.g.
// 100000 becomes "100,000".
func FormatAmount(amount int) string {
	s := strconv.Itoa(amount)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
