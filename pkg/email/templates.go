package email

import (
	"bytes"
	"html/template"
)

// TemplateManager holds the parsed email templates.
type TemplateManager struct {
	bookingTmpl *template.Template
}

// NewTemplateManager parses all email templates at startup.
func NewTemplateManager() (*TemplateManager, error) {
	bookingTmpl, err := template.New("bookingCreated").Parse(bookingCreatedTemplate)
	if err != nil {
		return nil, err
	}

	return &TemplateManager{bookingTmpl: bookingTmpl}, nil
}

// BookingTemplateData is the booking summary rendered into the notification.
type BookingTemplateData struct {
	ReferenceID  string
	CustomerName string
	Phone        string
	Address      string
	Pincode      string
	TotalValue   string
	Items        []BookingTemplateItem
}

// BookingTemplateItem is one line of the summary.
type BookingTemplateItem struct {
	Name     string
	Quantity string
	Rate     string
	Value    string
}

// GenerateBookingCreatedHTML executes the booking notification template.
func (tm *TemplateManager) GenerateBookingCreatedHTML(data BookingTemplateData) (string, error) {
	var body bytes.Buffer
	if err := tm.bookingTmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

const bookingCreatedTemplate = `
<!DOCTYPE html>
<html>
<head>
	<title>New Pickup Booking</title>
</head>
<body style="font-family: Arial, sans-serif;">
	<h2>New pickup booking {{.ReferenceID}}</h2>
	<p><strong>{{.CustomerName}}</strong> ({{.Phone}}) has requested a scrap pickup.</p>
	<p>{{.Address}} &mdash; {{.Pincode}}</p>
	<table border="1" cellpadding="6" cellspacing="0">
		<tr><th>Item</th><th>Quantity</th><th>Rate</th><th>Value</th></tr>
		{{range .Items}}
		<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{.Rate}}</td><td>{{.Value}}</td></tr>
		{{end}}
	</table>
	<p>Estimated total: <strong>{{.TotalValue}}</strong></p>
	<p>Assign a vendor from the admin dashboard.</p>
</body>
</html>
`
