package email

// SendWelcomeEmail sends a welcome email to a newly registered user.
func (c *Client) SendWelcomeEmail(to, username string) error {
	data := map[string]string{
		"AppName":  c.appName,
		"Username": username,
	}

	return c.SendEmail(
		to,
		"Welcome to "+c.appName+"!",
		TemplateWelcome,
		data,
	)
}
