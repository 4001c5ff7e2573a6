package web

import (
	"math"
	"net/url"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"letsfitgo/web/config"
	"letsfitgo/web/internal/content"
	"letsfitgo/web/internal/model"
)

// Site 所有页面共享的站点信息
type Site struct {
	Name         string
	SiteURL      string
	AppStoreURL  string
	PlayStoreURL string
	SupportEmail string
	LearnMoreURL string
	FooterBlurb  string
}

// NewSite 从配置构造站点信息，商店地址未配置时回退为 #
func NewSite(cfg *config.Config) Site {
	s := Site{
		Name:         cfg.App.Name,
		SiteURL:      cfg.Server.SiteURL,
		AppStoreURL:  cfg.App.AppStoreURL,
		PlayStoreURL: cfg.App.PlayStoreURL,
		SupportEmail: cfg.App.SupportEmail,
		LearnMoreURL: cfg.App.LearnMoreURL,
		FooterBlurb:  content.FooterBlurb,
	}
	if s.AppStoreURL == "" {
		s.AppStoreURL = "#"
	}
	if s.PlayStoreURL == "" {
		s.PlayStoreURL = "#"
	}
	return s
}

// Meta 页面 SEO 与 OpenGraph 元数据
type Meta struct {
	Title         string
	Description   string
	OGTitle       string
	OGDescription string
	OGImage       string
	CanonicalURL  string
}

// Page 模板根数据
type Page struct {
	Site Site
	Meta Meta
	Year int
	Body any
}

// 默认元数据，与分享卡片文案一致
const (
	defaultTitle         = "Join Challenge - Let's Fit Go"
	defaultDescription   = "You've been invited to join a fitness challenge on Let's Fit Go"
	defaultOGTitle       = "Join my fitness challenge!"
	defaultOGDescription = "Accept this challenge invite on Let's Fit Go"
	ogImagePath          = "/static/app-icon.svg"
)

// NewPage 构造页面数据；title/description 为空时使用默认值
func (s Site) NewPage(path, title, description string, now time.Time, body any) Page {
	if title == "" {
		title = defaultTitle
	}
	if description == "" {
		description = defaultDescription
	}
	return Page{
		Site: s,
		Meta: Meta{
			Title:         title,
			Description:   description,
			OGTitle:       defaultOGTitle,
			OGDescription: defaultOGDescription,
			OGImage:       s.SiteURL + ogImagePath,
			CanonicalURL:  s.SiteURL + path,
		},
		Year: now.Year(),
		Body: body,
	}
}

// ── 邀请页面 ──

// InviteState 邀请页面的三种视图
type InviteState int

const (
	InviteLoading InviteState = iota
	InviteInvalid
	InviteValid
)

// StateOf 解析结果为空时处于加载中
func StateOf(invite *model.ChallengeInvite) InviteState {
	switch {
	case invite == nil:
		return InviteLoading
	case invite.IsValid:
		return InviteValid
	default:
		return InviteInvalid
	}
}

// 无效邀请卡片的兜底文案
const (
	fallbackErrorHeading = "Invalid Invite"
	fallbackErrorMessage = "This invite link is invalid or has expired."
)

// InvitePage 邀请页面视图数据
type InvitePage struct {
	State InviteState
	Token string

	// 无效邀请
	ErrorHeading string
	ErrorMessage string

	// 有效邀请
	Card        *InviteCard
	AutoOpenURL string // 非空时页面加载后自动跳转一次
	OpenPath    string // 手动“打开应用”入口
}

// NewInvitePage 根据解析结果构造视图数据
func NewInvitePage(token string, invite *model.ChallengeInvite, now time.Time) *InvitePage {
	p := &InvitePage{
		State:    StateOf(invite),
		Token:    token,
		OpenPath: "/invite/" + url.PathEscape(token) + "/open",
	}
	switch p.State {
	case InviteInvalid:
		p.ErrorHeading = invite.Error
		if p.ErrorHeading == "" {
			p.ErrorHeading = fallbackErrorHeading
		}
		p.ErrorMessage = invite.Message
		if p.ErrorMessage == "" {
			p.ErrorMessage = fallbackErrorMessage
		}
	case InviteValid:
		p.Card = NewInviteCard(invite, now)
	}
	return p
}

// InviteCard 挑战信息卡片
type InviteCard struct {
	Title        string
	Description  string
	Duration     string
	Participants string
	Type         string
	StartsOn     string
	EndsOn       string
}

// HasDateRange 开始与结束日期都可解析时显示日期区间
func (c *InviteCard) HasDateRange() bool {
	return c.StartsOn != "" && c.EndsOn != ""
}

var numberPrinter = message.NewPrinter(language.English)

// NewInviteCard 构造卡片；所有可选字段缺失时对应位置留空
func NewInviteCard(invite *model.ChallengeInvite, now time.Time) *InviteCard {
	card := &InviteCard{
		Title:       invite.ChallengeName,
		Description: invite.Description,
		Type:        "Fitness Score",
	}

	if end, ok := parseDate(invite.EndDate); ok {
		card.Duration = DaysRemaining(end, now)
	}

	if invite.ParticipantCount != nil {
		card.Participants = numberPrinter.Sprintf("%d", *invite.ParticipantCount)
	}
	if invite.MaxParticipants != nil && *invite.MaxParticipants != 0 {
		card.Participants += numberPrinter.Sprintf(" / %d", *invite.MaxParticipants)
	}

	start, okStart := parseDate(invite.StartDate)
	end, okEnd := parseDate(invite.EndDate)
	if okStart && okEnd {
		card.StartsOn = start.Format("Jan 2, 2006")
		card.EndsOn = end.Format("Jan 2, 2006")
	}
	return card
}

// DaysRemaining 距离结束的天数（向上取整）
func DaysRemaining(end, now time.Time) string {
	days := int(math.Ceil(end.Sub(now).Hours() / 24))
	switch {
	case days < 0:
		return "Ended"
	case days == 0:
		return "Ends today"
	case days == 1:
		return "1 day left"
	default:
		return numberPrinter.Sprintf("%d days left", days)
	}
}

// parseDate 支持 RFC3339 时间戳与纯日期，纯日期按 UTC 零点处理
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
