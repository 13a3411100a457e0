package rtctoken

import (
	rtctokenbuilder "github.com/AgoraIO-Community/go-tokenbuilder/rtctokenbuilder2"
)

// Builder issues short-lived signed room credentials for a media channel.
type Builder interface {
	BuildToken(channelName string, uid uint32, expireSeconds uint32) (string, error)
	Configured() bool
}

// Agora builds RTC tokens with the publisher role. Token generation is a
// local HMAC computation, no network round trip is involved.
type Agora struct {
	appID          string
	appCertificate string
}

func NewAgora(appID, appCertificate string) *Agora {
	return &Agora{appID: appID, appCertificate: appCertificate}
}

func (a *Agora) Configured() bool {
	return a.appID != "" && a.appCertificate != ""
}

func (a *Agora) BuildToken(channelName string, uid uint32, expireSeconds uint32) (string, error) {
	// Token and privilege lifetimes are the same, access expires with the
	// publishing privilege.
	return rtctokenbuilder.BuildTokenWithUid(
		a.appID,
		a.appCertificate,
		channelName,
		uid,
		rtctokenbuilder.RolePublisher,
		expireSeconds,
		expireSeconds,
	)
}
