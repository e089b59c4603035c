// Package template renders the transactional email bodies for the contact
// lifecycle. Rendering is done eagerly so the outbox stores final HTML and the
// relay stays a dumb dispatcher.
package template

import "fmt"

type ContactDetails struct {
	FullName    string
	Email       string
	PhoneNumber string
	Subject     string
	Message     string
}

func ModeratorBooked(userName string) (subject, body string) {
	subject = "Moderator Booked - Dr. Online"
	body = fmt.Sprintf(`<h2>Hello %s,</h2>
<p>Your moderator has been successfully booked!</p>
<p>A doctor from our team will review your request and contact you soon with further assistance.</p>
<p>Thank you for using Dr. Online.</p>
<p>Best regards,<br/>Dr. Online Team</p>`, userName)

	return subject, body
}

func ModeratorAssignment(details ContactDetails) (subject, body string) {
	subject = "New Contact Request Assigned - Dr. Online"
	body = fmt.Sprintf(`<h2>Hello,</h2>
<p>A new contact request has been assigned to you:</p>
<p><strong>Patient Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong> %s</p>
<p>Please review and respond to this request accordingly.</p>
<p>Best regards,<br/>Dr. Online Team</p>`,
		details.FullName, details.Email, details.PhoneNumber, details.Subject, details.Message)

	return subject, body
}

func DoctorReferral(details ContactDetails) (subject, body string) {
	subject = "Patient Referral - Dr. Online"
	body = fmt.Sprintf(`<h2>Hello Doctor,</h2>
<p>A patient has been referred to you for consultation:</p>
<p><strong>Patient Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong> %s</p>
<p>Please contact the patient to proceed with the consultation.</p>
<p>Best regards,<br/>Dr. Online Team</p>`,
		details.FullName, details.Email, details.PhoneNumber, details.Subject, details.Message)

	return subject, body
}
