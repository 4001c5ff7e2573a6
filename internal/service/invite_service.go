package service

import (
	"context"
	"unicode/utf8"

	"go.uber.org/zap"

	"letsfitgo/web/internal/client"
	"letsfitgo/web/internal/model"
)

// InviteTokenLength 邀请码固定长度（按字符数计）
const InviteTokenLength = 6

// 邀请码格式不合法时的固定文案
const (
	MalformedTokenError   = "Invalid token"
	MalformedTokenMessage = "The invite link is malformed."
)

// InviteService 邀请解析业务接口
// Resolve 对任意输入都返回恰好一个结果，不返回 error
type InviteService interface {
	Resolve(ctx context.Context, token string) *model.ChallengeInvite
}

type inviteService struct {
	client client.ChallengeClient
	logger *zap.Logger
}

// NewInviteService 创建 InviteService 实例
func NewInviteService(c client.ChallengeClient, logger *zap.Logger) InviteService {
	return &inviteService{
		client: c,
		logger: logger,
	}
}

// ValidateToken 仅校验长度，不校验字符集
func ValidateToken(token string) bool {
	return utf8.RuneCountInString(token) == InviteTokenLength
}

func (s *inviteService) Resolve(ctx context.Context, token string) *model.ChallengeInvite {
	// 1. 格式校验：长度不符直接返回，不发起网络请求
	if !ValidateToken(token) {
		s.logger.Debug("邀请码格式无效", zap.String("token", token))
		return model.NewInvalidInvite(model.FailureMalformedToken, MalformedTokenError, MalformedTokenMessage)
	}

	// 2. 查询挑战服务
	invite := s.client.FetchInvite(ctx, token)

	if !invite.IsValid {
		s.logger.Info("邀请解析失败",
			zap.String("token", token),
			zap.String("failure", string(invite.Failure)),
			zap.String("error", invite.Error),
		)
	}
	return invite
}
