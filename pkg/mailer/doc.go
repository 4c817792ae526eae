// Package mailer renders templated emails and hands them to a provider.
//
// A Mailer joins a Sender (the delivery provider) with a Renderer (templates
// read from an fs.FS). Providers live in sub-packages: smtp uses a direct
// SMTP connection per message, resend uses the Resend HTTP API.
//
//	sender, err := smtp.New(smtp.Config{Host: "smtp.gmail.com", Port: 465, Username: user, Password: pass})
//	if err != nil {
//		return err
//	}
//	m := mailer.New(sender, mailer.NewRenderer(templates.FS), mailer.Config{DefaultLayout: "base.html"})
//	err = m.Send(ctx, mailer.SendParams{
//		To:       []string{"studio@example.com"},
//		Template: "enquiry.html",
//		Data:     enquiry,
//	})
//
// # Templates
//
// Templates may start with a YAML frontmatter block. The Subject key is used
// as the default subject and is itself executed as a text/template:
//
//	---
//	Subject: New enquiry from {{.DisplayName}}
//	---
//
// Two template kinds are supported, chosen by file extension:
//
//   - .md files run through text/template, then goldmark. The plain-text part
//     is the executed markdown.
//   - .html files run through html/template, so field values are escaped.
//     The plain-text part is the rendered HTML with tags stripped.
//
// The rendered body is wrapped in a layout from the layouts directory, which
// receives .Content and .Metadata.
//
// Subject resolution order: SendParams.Subject, frontmatter Subject,
// Config.FallbackSubject.
package mailer
