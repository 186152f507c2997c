package entity

import (
	"slices"
	"strings"
)

// Channel is an outbound notification medium.
type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
)

// Channels lists every supported channel.
var Channels = []Channel{ChannelSMS, ChannelEmail}

// ParseChannel accepts "sms" or "email" in any case.
func ParseChannel(s string) (Channel, bool) {
	c := Channel(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Channels, c) {
		return c, true
	}

	return "", false
}

// Label is the display name of the channel.
func (c Channel) Label() string {
	if c == ChannelSMS {
		return "SMS"
	}

	return "Email"
}

// Severity of an alert.
type Severity string

const (
	SeverityRed   Severity = "red"
	SeverityAmber Severity = "amber"
	SeverityGreen Severity = "green"
)

// Severities lists severities from most to least urgent.
var Severities = []Severity{SeverityRed, SeverityAmber, SeverityGreen}

// ParseSeverity accepts "red", "amber" or "green" in any case.
func ParseSeverity(s string) (Severity, bool) {
	sev := Severity(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Severities, sev) {
		return sev, true
	}

	return "", false
}

func (s Severity) Upper() string {
	return strings.ToUpper(string(s))
}

// NotificationPreferences gates alert fan-out per channel and severity.
type NotificationPreferences struct {
	ChannelEnabled   map[Channel]bool              `json:"channel_enabled"`
	AlertTypeEnabled map[Channel]map[Severity]bool `json:"alert_type_enabled"`
	Recipients       map[Channel][]string          `json:"recipients"`
}

// NewNotificationPreferences returns preferences with every channel disabled,
// every severity enabled and no recipients.
func NewNotificationPreferences() *NotificationPreferences {
	prefs := &NotificationPreferences{
		ChannelEnabled:   make(map[Channel]bool, len(Channels)),
		AlertTypeEnabled: make(map[Channel]map[Severity]bool, len(Channels)),
		Recipients:       make(map[Channel][]string, len(Channels)),
	}
	for _, ch := range Channels {
		prefs.ChannelEnabled[ch] = false
		prefs.AlertTypeEnabled[ch] = map[Severity]bool{
			SeverityRed:   true,
			SeverityAmber: true,
			SeverityGreen: true,
		}
		prefs.Recipients[ch] = []string{}
	}

	return prefs
}

// Clone returns a deep copy.
func (p *NotificationPreferences) Clone() *NotificationPreferences {
	out := &NotificationPreferences{
		ChannelEnabled:   make(map[Channel]bool, len(p.ChannelEnabled)),
		AlertTypeEnabled: make(map[Channel]map[Severity]bool, len(p.AlertTypeEnabled)),
		Recipients:       make(map[Channel][]string, len(p.Recipients)),
	}
	for ch, enabled := range p.ChannelEnabled {
		out.ChannelEnabled[ch] = enabled
	}
	for ch, severities := range p.AlertTypeEnabled {
		inner := make(map[Severity]bool, len(severities))
		for sev, enabled := range severities {
			inner[sev] = enabled
		}
		out.AlertTypeEnabled[ch] = inner
	}
	for ch, recipients := range p.Recipients {
		out.Recipients[ch] = slices.Clone(recipients)
	}

	return out
}

// Allows reports whether an alert of severity may be sent over channel.
func (p *NotificationPreferences) Allows(channel Channel, severity Severity) bool {
	if !p.ChannelEnabled[channel] {
		return false
	}

	return p.AlertTypeEnabled[channel][severity]
}

// RecipientsFor returns a copy of the recipients of channel.
func (p *NotificationPreferences) RecipientsFor(channel Channel) []string {
	return slices.Clone(p.Recipients[channel])
}

// HasRecipient reports whether value is already registered on channel.
func (p *NotificationPreferences) HasRecipient(channel Channel, value string) bool {
	return slices.Contains(p.Recipients[channel], value)
}
