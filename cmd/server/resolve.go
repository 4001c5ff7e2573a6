package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"letsfitgo/web/config"
	"letsfitgo/web/internal/client"
	"letsfitgo/web/internal/deeplink"
	"letsfitgo/web/internal/model"
	"letsfitgo/web/internal/service"
)

// resolveOutput resolve 子命令的输出结构
type resolveOutput struct {
	Invite   *model.ChallengeInvite `json:"invite"`
	DeepLink string                 `json:"deepLink,omitempty"`
}

func newResolveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <token>",
		Short: "解析一次邀请码并输出结果",
		Long: `按邀请页的同一流程解析邀请码：先校验长度，再查询挑战服务。
邀请有效时同时输出页面会自动打开的深链地址。`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return fmt.Errorf("加载配置失败: %w", err)
			}

			token := args[0]
			c := client.NewChallengeClient(cfg.API.BaseURL, &http.Client{}, zap.NewNop())
			svc := service.NewService(c, zap.NewNop())
			invite := svc.Invite.Resolve(cmd.Context(), token)

			out := resolveOutput{Invite: invite}
			d := deeplink.NewDispatcher(cfg.App.Scheme, token, func(target string) {
				out.DeepLink = target
			})
			d.Observe(invite)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}
