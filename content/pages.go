// Package content holds the text of the informational pages shared by the terminal
// and web front ends.
package content

const (
	SiteName    = "MovieObserver"
	Tagline     = "Find movies playing in theaters with details on original language screenings."
	LastUpdated = "May 31, 2025"

	ContactEmail  = "contact@movieobserver.com"
	LegalEmail    = "legal@movieobserver.com"
	PrivacyEmail  = "privacy@movieobserver.com"
	PostalAddress = "123 Cinema Street, Movie Town, MT 12345"
	OfficeHours   = "Monday - Friday, 9am - 5pm"
)

type Section struct {
	Heading    string
	Paragraphs []string
	Bullets    []string
	// Closing paragraphs follow the bullet list.
	Closing []string
}

type Page struct {
	Slug        string
	Title       string
	Description string
	Updated     string
	Sections    []Section
}

type Link struct {
	Label string
	Path  string
}

// NavLinks are shown in the header of every page.
var NavLinks = []Link{
	{Label: "Home", Path: "/"},
	{Label: "About", Path: "/about"},
	{Label: "Theaters", Path: "/theaters"},
}

// InfoLinks are shown in the footer.
var InfoLinks = []Link{
	{Label: "Privacy Policy", Path: "/privacy"},
	{Label: "Terms of Service", Path: "/terms"},
	{Label: "Contact Us", Path: "/contact"},
}

// Lookup returns the static page for slug.
func Lookup(slug string) (Page, bool) {
	switch slug {
	case "about":
		return About(), true
	case "terms":
		return Terms(), true
	case "privacy":
		return Privacy(), true
	}
	return Page{}, false
}

func About() Page {
	return Page{
		Slug:        "about",
		Title:       "About MovieObserver",
		Description: "Learn about the MovieObserver app and how it helps you find movies in original language",
		Sections: []Section{
			{
				Heading: "Our Mission",
				Paragraphs: []string{
					"MovieObserver was created to help moviegoers easily find information about screenings in original language, allowing you to enjoy films as they were meant to be seen.",
					"We aggregate data from multiple cinema websites to present you with a clear, unified view of what's playing and where, with special attention to original language options.",
				},
			},
			{
				Heading: "How It Works",
				Paragraphs: []string{
					"Our system automatically collects showtime data from cinema websites multiple times a day, ensuring you always have the latest information at your fingertips.",
					"Features:",
				},
				Bullets: []string{
					"Find movies playing on specific dates",
					"Filter to show only original language screenings",
					"See all theaters showing a specific movie",
					"Direct links to booking pages",
					"Movie details including duration and genres",
				},
			},
			{
				Heading: "Contact Us",
				Paragraphs: []string{
					"Have questions or suggestions? We'd love to hear from you!",
					"Email: " + ContactEmail,
				},
			},
		},
	}
}

func Terms() Page {
	return Page{
		Slug:        "terms",
		Title:       "Terms of Service",
		Description: "MovieObserver Terms of Service",
		Updated:     LastUpdated,
		Sections: []Section{
			{
				Heading: "1. Introduction",
				Paragraphs: []string{
					`Welcome to MovieObserver ("we," "our," or "us"). These Terms of Service ("Terms") govern your access to and use of our website, services, and applications (collectively, the "Service").`,
					"By accessing or using our Service, you agree to be bound by these Terms. If you disagree with any part of the Terms, you do not have permission to access the Service.",
				},
			},
			{
				Heading: "2. Use of the Service",
				Paragraphs: []string{
					"MovieObserver provides information about movie showtimes and theaters, with a focus on original language screenings. Our service aggregates publicly available data from movie theaters and cinema websites.",
					"You may use our Service only as permitted by law and these Terms. The Service and all content, information, and functionality are protected by copyright, trademark, and other laws.",
				},
			},
			{
				Heading: "3. User Accounts",
				Paragraphs: []string{
					"Some features of our Service may require you to register for an account. You agree to provide accurate, current, and complete information during the registration process and to update such information to keep it accurate, current, and complete.",
					"You are responsible for safeguarding your account and for all activities that occur under your account. You must notify us immediately of any unauthorized use of your account.",
				},
			},
			{
				Heading: "4. Content Accuracy",
				Paragraphs: []string{
					"While we strive to provide accurate and up-to-date information about movie showtimes and theaters, we cannot guarantee the accuracy or completeness of this information. Movie schedules, prices, and availability are subject to change by the theaters themselves.",
					"We recommend confirming all information directly with the theater before making plans.",
				},
			},
			{
				Heading: "5. Privacy",
				Paragraphs: []string{
					"Our Privacy Policy explains how we collect, use, and protect your personal information. By using our Service, you agree to our collection and use of information in accordance with our Privacy Policy.",
				},
			},
			{
				Heading: "6. Changes to Terms",
				Paragraphs: []string{
					"We may modify these Terms at any time. If we make material changes to these Terms, we will notify you by email or by posting a notice on our website. Your continued use of the Service after such notification constitutes your acceptance of the new Terms.",
				},
			},
			{
				Heading: "7. Contact Us",
				Paragraphs: []string{
					"If you have any questions about these Terms, please contact us at:",
					"Email: " + LegalEmail,
					"Address: " + PostalAddress,
				},
			},
		},
	}
}

func Privacy() Page {
	return Page{
		Slug:        "privacy",
		Title:       "Privacy Policy",
		Description: "MovieObserver Privacy Policy",
		Updated:     LastUpdated,
		Sections: []Section{
			{
				Heading: "1. Introduction",
				Paragraphs: []string{
					"At MovieObserver, we respect your privacy and are committed to protecting your personal data. This Privacy Policy explains how we collect, use, disclose, and safeguard your information when you use our website or services.",
					"Please read this Privacy Policy carefully. If you do not agree with the terms of this Privacy Policy, please do not access our website or use our services.",
				},
			},
			{
				Heading:    "2. Information We Collect",
				Paragraphs: []string{"We may collect several types of information from and about users of our website, including:"},
				Bullets: []string{
					"Personal information such as name and email address when you contact us or create an account",
					"Usage data about how you interact with our website",
					"Technical data such as IP address, browser type, and device information",
					"Cookie data as described in our Cookie Policy",
				},
			},
			{
				Heading:    "3. How We Use Your Information",
				Paragraphs: []string{"We use the information we collect to:"},
				Bullets: []string{
					"Provide and maintain our service",
					"Notify you about changes to our service",
					"Allow you to participate in interactive features when you choose to do so",
					"Provide customer support",
					"Monitor and analyze usage patterns and trends",
					"Improve our website and user experience",
				},
			},
			{
				Heading:    "4. Disclosure of Your Information",
				Paragraphs: []string{"We may disclose your personal information:"},
				Bullets: []string{
					"To comply with legal obligations",
					"To protect and defend our rights or property",
					"To prevent or investigate possible wrongdoing in connection with the service",
					"To protect the personal safety of users of the service or the public",
					"To protect against legal liability",
				},
				Closing: []string{
					"We do not sell, trade, or otherwise transfer your personal information to third parties without your consent, except as described in this Privacy Policy.",
				},
			},
			{
				Heading: "5. Data Security",
				Paragraphs: []string{
					"We implement reasonable security measures to protect your personal information. However, please be aware that no method of transmission over the internet or electronic storage is 100% secure, and we cannot guarantee absolute security.",
				},
			},
			{
				Heading:    "6. Your Data Protection Rights",
				Paragraphs: []string{"Depending on your location, you may have certain rights regarding your personal data, including:"},
				Bullets: []string{
					"The right to access, update, or delete your information",
					"The right to rectification if your information is inaccurate or incomplete",
					"The right to object to our processing of your personal data",
					"The right to request restriction of processing your personal data",
					"The right to data portability",
					"The right to withdraw consent",
				},
			},
			{
				Heading: "7. Changes to This Privacy Policy",
				Paragraphs: []string{
					`We may update our Privacy Policy from time to time. We will notify you of any changes by posting the new Privacy Policy on this page and updating the "Last updated" date.`,
					"You are advised to review this Privacy Policy periodically for any changes. Changes to this Privacy Policy are effective when they are posted on this page.",
				},
			},
			{
				Heading: "8. Contact Us",
				Paragraphs: []string{
					"If you have any questions about this Privacy Policy, please contact us at:",
					"Email: " + PrivacyEmail,
					"Address: " + PostalAddress,
				},
			},
		},
	}
}
