package email

// SendWelcomeEmail sends the post-signup welcome email.
func (c *Client) SendWelcomeEmail(to, name string) error {
	data := map[string]string{
		"UserName": name,
	}

	return c.SendEmail(
		to,
		"Welcome to Researchify!",
		TemplateWelcome,
		data,
	)
}

// SendApplicationReceivedEmail confirms to a student that their
// research application was received.
func (c *Client) SendApplicationReceivedEmail(to, studentName, listingID string) error {
	data := map[string]string{
		"StudentName": studentName,
		"ListingID":   listingID,
	}

	return c.SendEmail(
		to,
		"Your research application was received",
		TemplateApplicationReceived,
		data,
	)
}
