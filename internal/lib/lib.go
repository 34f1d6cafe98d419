// Package lib holds integrations that sit beside the request pipeline
// rather than inside it: the Resend email client (lib/email) and the
// asynq worker that delivers welcome emails (lib/job).
package lib
