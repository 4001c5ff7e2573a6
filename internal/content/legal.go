package content

// Item 列表项，Label 非空时以粗体前缀显示
type Item struct {
	Label string
	Text  string
}

// Group 章节内的小节
type Group struct {
	Heading string
	Intro   string
	Items   []Item
}

// Section 法律页面的一个编号章节
type Section struct {
	Title      string
	Paragraphs []string
	Items      []Item
	Groups     []Group
	Outro      []string
}

func items(texts ...string) []Item {
	out := make([]Item, 0, len(texts))
	for _, t := range texts {
		out = append(out, Item{Text: t})
	}
	return out
}

// Privacy 隐私政策全文
func Privacy(supportEmail string) []Section {
	return []Section{
		{
			Title: "1. Introduction",
			Paragraphs: []string{
				`Welcome to Let's Fit Go ("we," "our," or "us"). We are committed to protecting your privacy and ensuring the security of your personal information. This Privacy Policy explains how we collect, use, disclose, and safeguard your information when you use our mobile application and services.`,
				"By using Let's Fit Go, you agree to the collection and use of information in accordance with this policy.",
			},
		},
		{
			Title: "2. Information We Collect",
			Groups: []Group{
				{
					Heading: "2.1 Account Information",
					Items:   items("Name and email address", "Profile information and preferences", "Account credentials (securely encrypted)"),
				},
				{
					Heading: "2.2 Fitness and Health Data",
					Intro:   "When you connect wearable devices or health platforms, we collect the following types of data:",
				},
				{
					Heading: "Apple HealthKit / Apple Watch",
					Items:   items("Activity data (steps, distance, active energy)", "Workout data (type, duration, calories burned)", "Heart rate data", "Other health metrics you authorize"),
				},
				{
					Heading: "Garmin Connect",
					Items:   items("Activity data (workouts, steps, distance, calories)", "Heart rate data", "Sleep data", "Stress and recovery metrics"),
				},
				{
					Heading: "Fitbit",
					Items:   items("Activity data (steps, distance, calories)", "Sleep data", "Heart rate data"),
				},
				{
					Heading: "Whoop",
					Items:   items("Strain data", "Recovery metrics", "Sleep data"),
				},
				{
					Heading: "2.3 App Usage Data",
					Items:   items("Challenge participation and progress", "Workout logs and entries", "Leaderboard rankings", "App interactions and preferences"),
				},
			},
		},
		{
			Title:      "3. How We Use Your Information",
			Paragraphs: []string{"We use the collected information for the following purposes:"},
			Items: items(
				"To provide and maintain our fitness tracking and challenge services",
				"To sync your fitness data from connected wearable devices and health platforms",
				"To display your progress, rankings, and achievements in challenges",
				"To enable social features, including challenging friends and sharing progress",
				"To send push notifications about challenge updates and friend activities",
				"To improve our app and develop new features",
				"To provide customer support and respond to your inquiries",
				"To ensure the security and integrity of our services",
			),
		},
		{
			Title:      "4. Data Storage and Security",
			Paragraphs: []string{"Your data is stored securely using industry-standard security measures:"},
			Items: []Item{
				{Label: "Database", Text: "Data is stored in Supabase, a secure cloud database platform"},
				{Label: "Hosting", Text: "Our application infrastructure is hosted on Railway"},
				{Label: "Encryption", Text: "All data is encrypted in transit using HTTPS/TLS"},
				{Label: "Access Controls", Text: "Access to your data is restricted to authorized personnel only"},
				{Label: "Authentication", Text: "Secure authentication methods protect your account"},
			},
			Outro: []string{"While we implement robust security measures, no method of transmission over the internet or electronic storage is 100% secure. We cannot guarantee absolute security but are committed to protecting your information."},
		},
		{
			Title:      "5. Third-Party Services and Integrations",
			Paragraphs: []string{"Our app integrates with the following third-party services to provide fitness tracking capabilities:"},
			Groups: []Group{
				{
					Heading: "5.1 Wearable Device Integrations",
					Items: []Item{
						{Label: "Apple HealthKit", Text: "We access health and fitness data from your Apple devices. You control which data types to share through your iOS settings."},
						{Label: "Garmin Connect", Text: "We access your Garmin activity, health, and wellness data through the Garmin Connect API. Your use of Garmin services is also subject to Garmin's Privacy Policy."},
						{Label: "Fitbit", Text: "We access your Fitbit activity and health data. Your use of Fitbit services is also subject to Fitbit's Privacy Policy."},
						{Label: "Whoop", Text: "We access your Whoop strain, recovery, and sleep data. Your use of Whoop services is also subject to Whoop's Privacy Policy."},
					},
				},
				{
					Heading: "5.2 Other Third-Party Services",
					Items: []Item{
						{Label: "App Stores", Text: "When you download our app through Apple App Store or Google Play Store, your use is subject to their respective terms and privacy policies."},
						{Label: "Analytics", Text: "We may use analytics services to understand app usage and improve our services."},
					},
				},
			},
		},
		{
			Title:      "6. Data Sharing and Disclosure",
			Paragraphs: []string{"We do not sell your personal information. We may share your information only in the following circumstances:"},
			Items: []Item{
				{Label: "With Your Consent", Text: "When you participate in challenges, your username and progress may be visible to other participants"},
				{Label: "Service Providers", Text: "With trusted third-party service providers who assist in operating our app (e.g., database hosting, analytics)"},
				{Label: "Legal Requirements", Text: "When required by law or to protect our rights and safety"},
				{Label: "Business Transfers", Text: "In connection with a merger, acquisition, or sale of assets (with notice to users)"},
			},
		},
		{
			Title:      "7. Your Rights and Choices",
			Paragraphs: []string{"You have the following rights regarding your personal information:"},
			Items: []Item{
				{Label: "Access", Text: "Request access to your personal data"},
				{Label: "Correction", Text: "Update or correct inaccurate information"},
				{Label: "Deletion", Text: "Request deletion of your account and associated data"},
				{Label: "Data Portability", Text: "Request a copy of your data in a portable format"},
				{Label: "Revoke Permissions", Text: "Revoke access to wearable device data at any time through your device settings or app preferences"},
				{Label: "Opt-Out", Text: "Opt out of certain data collection or marketing communications"},
			},
			Outro: []string{"To exercise these rights, please contact us at " + supportEmail + "."},
		},
		{
			Title: "8. Children's Privacy",
			Paragraphs: []string{
				"Let's Fit Go is not intended for children under the age of 13. We do not knowingly collect personal information from children under 13. If you believe we have collected information from a child under 13, please contact us immediately.",
			},
		},
		{
			Title: "9. International Data Transfers",
			Paragraphs: []string{
				"Your information may be transferred to and processed in countries other than your country of residence. These countries may have data protection laws that differ from those in your country. We ensure appropriate safeguards are in place to protect your data in accordance with this Privacy Policy.",
			},
		},
		{
			Title: "10. Changes to This Privacy Policy",
			Paragraphs: []string{
				`We may update this Privacy Policy from time to time. We will notify you of any changes by posting the new Privacy Policy on this page and updating the "Last Updated" date. You are advised to review this Privacy Policy periodically for any changes.`,
			},
		},
		{
			Title:      "11. Contact Us",
			Paragraphs: []string{"If you have any questions about this Privacy Policy or our data practices, please contact us:"},
			Items: []Item{
				{Label: "Email", Text: supportEmail},
				{Label: "Website", Text: "letsfitgo.com"},
			},
		},
	}
}

// Terms 服务条款
func Terms(supportEmail string) []Section {
	return []Section{
		{
			Title: "1. Acceptance of Terms",
			Paragraphs: []string{
				"By downloading or using Let's Fit Go, you agree to be bound by these Terms of Service. If you do not agree, do not use the app.",
			},
		},
		{
			Title: "2. Challenges and Invites",
			Paragraphs: []string{
				"Invite links let you join a challenge created by another user. Invites may expire or reach their participant limit, in which case the link will no longer work.",
			},
		},
		{
			Title: "3. Your Account",
			Paragraphs: []string{
				"You are responsible for the activity on your account and for keeping your credentials secure.",
			},
		},
		{
			Title: "4. Health Disclaimer",
			Paragraphs: []string{
				"Let's Fit Go is not a medical service. Consult a professional before starting any new fitness program.",
			},
		},
		{
			Title:      "5. Contact Us",
			Paragraphs: []string{"Questions about these Terms can be sent to " + supportEmail + "."},
		},
	}
}
