// Package content 站点营销与法律页面的静态文案
package content

// Feature 首页功能卡片
type Feature struct {
	Icon        string
	Title       string
	Description string
	Color       string
}

// Step 编号步骤（“如何使用”与“为什么选择”两个区块共用）
type Step struct {
	Number      string
	Icon        string
	Title       string
	Description string
}

// NavItem 顶部导航锚点
type NavItem struct {
	Name string
	Href string
}

// Hero 首页首屏文案
var Hero = struct {
	Title    string
	Subtitle string
}{
	Title:    "Fitness Challenges with Friends",
	Subtitle: "Challenge friends, track your progress, and stay motivated with Let's Fit Go. Join fitness challenges and achieve your goals together.",
}

// Menu 首页导航
var Menu = []NavItem{
	{Name: "Features", Href: "#features"},
	{Name: "How It Works", Href: "#how-it-works"},
	{Name: "Download", Href: "#download"},
	{Name: "About", Href: "#about"},
}

// Benefits “Why Choose Let's Fit Go” 三步说明
var Benefits = []Step{
	{Number: "Step 1", Title: "Challenge Friends", Description: "Create fitness challenges and invite friends to compete together."},
	{Number: "Step 2", Title: "Track Progress", Description: "Log workouts, monitor your score, and watch your fitness improve daily."},
	{Number: "Step 3", Title: "Stay Motivated", Description: "Climb leaderboards, earn achievements, and celebrate wins with your crew."},
}

// Notification 推送通知介绍区块
var Notification = struct {
	Title string
	Body  string
}{
	Title: "Know When Your Friends Are Working Out",
	Body:  "Get push notifications when friends in your challenges start or complete workouts. Stay connected and motivated with real-time updates that keep you in the loop and encourage you to stay active alongside your friends.",
}

// Features 功能卡片
var Features = []Feature{
	{
		Icon:        "users",
		Title:       "Challenge Friends",
		Description: "Create and join fitness challenges with friends. Compete, motivate each other, and achieve your goals together.",
		Color:       "blue",
	},
	{
		Icon:        "trophy",
		Title:       "Track Your Score",
		Description: "Monitor your fitness score based on your activities. See how you rank on leaderboards and track your progress over time.",
		Color:       "green",
	},
	{
		Icon:        "target",
		Title:       "Stay Accountable",
		Description: "Set goals and stay accountable with daily check-ins. Get reminders and celebrate your achievements along the way.",
		Color:       "purple",
	},
	{
		Icon:        "trending-up",
		Title:       "Real-time Leaderboards",
		Description: "See where you stand in real-time. Compete with friends and climb the ranks as you complete your fitness activities.",
		Color:       "orange",
	},
}

// HowItWorks 使用步骤
var HowItWorks = []Step{
	{
		Number:      "1",
		Icon:        "user-plus",
		Title:       "Join or Create a Challenge",
		Description: "Invite friends to join your fitness challenge or accept an invite to participate in theirs.",
	},
	{
		Number:      "2",
		Icon:        "calendar",
		Title:       "Track Your Activities",
		Description: "Log your daily fitness activities and watch your score increase as you stay consistent.",
	},
	{
		Number:      "3",
		Icon:        "award",
		Title:       "Compete & Win",
		Description: "Climb the leaderboard, compete with friends, and celebrate your achievements together.",
	},
}

// FooterBlurb 页脚品牌介绍
const FooterBlurb = "Your fitness accountability partner. Challenge friends, track progress, and achieve your goals together."
