package submission

import (
	"context"

	"github.com/csheth/convoy/internal/api"
	"github.com/csheth/convoy/internal/forms"
)

// NewsletterSender adapts the API client to the newsletter form.
func NewsletterSender(client *api.Client) Sender {
	return func(ctx context.Context, fields forms.Fields) (api.Result, error) {
		return client.SubscribeNewsletter(ctx, NewsletterEntry(fields))
	}
}

// ApplicationSender adapts the API client to the application form.
func ApplicationSender(client *api.Client) Sender {
	return func(ctx context.Context, fields forms.Fields) (api.Result, error) {
		return client.SubmitApplication(ctx, ApplicationEntry(fields))
	}
}

// NewsletterEntry maps newsletter fields onto the wire payload.
func NewsletterEntry(fields forms.Fields) api.NewsletterEntry {
	source := fields[forms.FieldSource]
	if source == "" {
		source = forms.DefaultSource
	}
	return api.NewsletterEntry{
		Email:  fields[forms.FieldEmail],
		Name:   fields[forms.FieldName],
		Source: source,
	}
}

// ApplicationEntry maps application fields onto the wire payload.
func ApplicationEntry(fields forms.Fields) api.ApplicationEntry {
	return api.ApplicationEntry{
		Name:         fields[forms.FieldName],
		Email:        fields[forms.FieldEmail],
		RoleInterest: fields[forms.FieldRoleInterest],
		Experience:   fields[forms.FieldExperience],
		PortfolioURL: fields[forms.FieldPortfolioURL],
		Message:      fields[forms.FieldMessage],
	}
}

// SenderFor picks the adapter matching a form.
func SenderFor(form forms.FormID, client *api.Client) Sender {
	if form == forms.Application {
		return ApplicationSender(client)
	}
	return NewsletterSender(client)
}
