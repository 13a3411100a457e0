package mailer

import (
	"fmt"
	"strings"
	"time"
)

// InviteDetails carries everything the meeting invitation email renders.
type InviteDetails struct {
	Title       string
	MeetingType string
	StartTime   *time.Time
	EndTime     *time.Time
	JoinLink    string
}

const inviteWarning = "Only assigned users can join"

// MeetingInvite renders the invitation email for one recipient. Start and
// end rows are omitted when the meeting has no schedule window.
func MeetingInvite(to string, details InviteDetails) Message {
	title := details.Title
	if title == "" {
		title = "Meeting"
	}

	var b strings.Builder
	b.WriteString(`<body style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background: #0f0f0f; margin: 0; padding: 40px 20px; color: #e0e0e0;">`)
	b.WriteString(`<div style="max-width: 600px; margin: 0 auto; padding: 40px; background-color: #1a1a2e; border-radius: 12px; border: 1px solid #2d3561;">`)
	fmt.Fprintf(&b, `<h2 style="color: #00a9ff; text-align: center;">%s</h2>`, title)
	fmt.Fprintf(&b, `<p style="color: #b0b0b0; text-align: center;">Type: %s</p>`, details.MeetingType)
	if details.StartTime != nil {
		fmt.Fprintf(&b, `<p style="color: #b0b0b0; text-align: center;">Start: %s</p>`, details.StartTime.Format(time.RFC1123))
	}
	if details.EndTime != nil {
		fmt.Fprintf(&b, `<p style="color: #b0b0b0; text-align: center;">End: %s</p>`, details.EndTime.Format(time.RFC1123))
	}
	fmt.Fprintf(&b, `<div style="text-align: center; margin: 20px 0;"><a href="%s" style="display: inline-block; background: #00a9ff; color: white; padding: 12px 20px; border-radius: 8px; text-decoration: none;">Join Meeting</a></div>`, details.JoinLink)
	fmt.Fprintf(&b, `<p style="color: #808080; font-size: 12px; text-align: center;">%s</p>`, inviteWarning)
	b.WriteString(`</div></body>`)

	return Message{
		To:      to,
		Subject: "Meeting Invitation - TechFlow",
		HTML:    b.String(),
	}
}
