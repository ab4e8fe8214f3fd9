package seed

import "github.com/seosites/seosites/backend/go-api/internal/models"

func projects() []*models.Project {
	return []*models.Project{
		{
			Title:        "E-Commerce Platform",
			Description:  "A full-featured e-commerce platform with payment integration, inventory management, and analytics dashboard.",
			Category:     "ecommerce",
			Technologies: []string{"Next.js", "Node.js", "MongoDB", "Stripe", "Tailwind CSS"},
			Client:       "TechStore Inc.",
			Duration:     "3 months",
			LiveURL:      "https://example-ecommerce.com",
			Featured:     true,
			Order:        1,
		},
		{
			Title:        "Mobile Banking App",
			Description:  "Secure mobile banking application with real-time transactions, biometric authentication, and financial insights.",
			Category:     "mobile",
			Technologies: []string{"React Native", "Node.js", "PostgreSQL", "Redis"},
			Client:       "FinTech Solutions",
			Duration:     "4 months",
			LiveURL:      "https://example-banking.com",
			Featured:     true,
			Order:        2,
		},
		{
			Title:        "SaaS Project Management Tool",
			Description:  "Collaborative project management platform with real-time updates, time tracking, and team communication features.",
			Category:     "saas",
			Technologies: []string{"React", "Express", "MongoDB", "Socket.io", "AWS"},
			Client:       "Productivity Co.",
			Duration:     "6 months",
			LiveURL:      "https://example-pm.com",
			Featured:     true,
			Order:        3,
		},
		{
			Title:        "Corporate Website",
			Description:  "Modern corporate website with CMS integration, blog, and multi-language support.",
			Category:     "web",
			Technologies: []string{"Next.js", "Strapi", "PostgreSQL", "Vercel"},
			Client:       "Global Corp",
			Duration:     "2 months",
			LiveURL:      "https://example-corp.com",
			Order:        4,
		},
	}
}

func services() []*models.Service {
	return []*models.Service{
		{
			Title:       "Web Development",
			Description: "Custom web applications built with modern technologies. Responsive, fast and user-friendly websites.",
			Icon:        "FiCode",
			Features:    []string{"Responsive Design", "SEO Optimized", "High Performance", "Secure & Scalable", "Progressive Web Apps"},
			Order:       1,
		},
		{
			Title:       "Mobile App Development",
			Description: "Native and cross-platform mobile applications for iOS and Android.",
			Icon:        "FiSmartphone",
			Features:    []string{"iOS & Android Apps", "Cross-platform Solutions", "App Store Deployment", "Push Notifications", "Offline Functionality"},
			Order:       2,
		},
		{
			Title:       "SaaS Solutions",
			Description: "Software-as-a-Service platforms with subscription management and analytics.",
			Icon:        "FiCloud",
			Features:    []string{"Multi-tenant Architecture", "Subscription Management", "Analytics Dashboard", "API Integration", "Cloud Infrastructure"},
			Order:       3,
		},
		{
			Title:       "E-Commerce Development",
			Description: "Online stores with payment processing, inventory management, and order fulfillment.",
			Icon:        "FiShoppingCart",
			Features:    []string{"Shopping Cart", "Payment Gateway Integration", "Inventory Management", "Order Tracking", "Customer Management"},
			Order:       4,
		},
	}
}

func testimonials() []*models.Testimonial {
	return []*models.Testimonial{
		{
			ClientName: "Sarah Johnson",
			Company:    "TechStart Inc.",
			Position:   "CEO",
			Content:    "Working with seosites was an absolute pleasure. They delivered on time and exceeded our expectations.",
			Rating:     models.Int(5),
			Featured:   true,
		},
		{
			ClientName: "Michael Chen",
			Company:    "Digital Ventures",
			Position:   "CTO",
			Content:    "The team transformed our vision into a stunning reality. Their commitment to quality is unmatched.",
			Rating:     models.Int(5),
			Featured:   true,
		},
		{
			ClientName: "Emily Rodriguez",
			Company:    "E-Shop Global",
			Position:   "Marketing Director",
			Content:    "Our new e-commerce platform significantly boosted online sales, and the admin panel is intuitive.",
			Rating:     models.Int(5),
			Featured:   true,
		},
	}
}

func technologies() []*models.Technology {
	tech := func(name, category, icon string, proficiency int) *models.Technology {
		return &models.Technology{Name: name, Category: category, Icon: icon, Proficiency: models.Int(proficiency)}
	}
	return []*models.Technology{
		tech("React", "frontend", "SiReact", 95),
		tech("Next.js", "frontend", "SiNextdotjs", 90),
		tech("TypeScript", "frontend", "SiTypescript", 90),
		tech("Tailwind CSS", "frontend", "SiTailwindcss", 95),
		tech("Vue.js", "frontend", "SiVuedotjs", 80),

		tech("Node.js", "backend", "SiNodedotjs", 95),
		tech("Express", "backend", "SiExpress", 90),
		tech("Python", "backend", "SiPython", 85),
		tech("Django", "backend", "SiDjango", 80),

		tech("MongoDB", "database", "SiMongodb", 90),
		tech("PostgreSQL", "database", "SiPostgresql", 85),
		tech("Redis", "database", "SiRedis", 80),
		tech("MySQL", "database", "SiMysql", 85),

		tech("Docker", "devops", "SiDocker", 85),
		tech("AWS", "devops", "SiAmazonaws", 80),
		tech("GitHub Actions", "devops", "SiGithubactions", 85),
		tech("Vercel", "devops", "SiVercel", 90),
	}
}

func stats() []*models.Stat {
	var out []*models.Stat
	add := func(page string, pairs ...[2]string) {
		for i, p := range pairs {
			out = append(out, &models.Stat{Label: p[0], Value: p[1], Page: page, Order: i + 1})
		}
	}
	add("home", [2]string{"Projects Completed", "150+"}, [2]string{"Happy Clients", "80+"},
		[2]string{"Years of Excellence", "10+"}, [2]string{"Countries Served", "15+"})
	add("about", [2]string{"Projects Completed", "150+"}, [2]string{"Happy Clients", "80+"},
		[2]string{"Team Members", "25+"}, [2]string{"Countries Served", "15+"})
	add("portfolio", [2]string{"Projects Delivered", "150+"}, [2]string{"Happy Clients", "80+"},
		[2]string{"Success Rate", "98%"}, [2]string{"Countries", "15+"})
	return out
}

func heroContents() []*models.HeroContent {
	return []*models.HeroContent{
		{
			Page:            "home",
			Badge:           models.Badge{Icon: "FiZap", Text: "Innovative Digital Solutions"},
			Title:           "Crafting Digital",
			HighlightedText: "Excellence",
			Subtitle:        "We transform ideas into powerful digital experiences that drive business growth and engage users.",
			CTAButtons: []models.CTAButton{
				{Text: "Get Started", Link: "/contact", Variant: "primary"},
				{Text: "View Our Work", Link: "/portfolio", Variant: "outline"},
			},
		},
		{
			Page:            "about",
			Badge:           models.Badge{Icon: "FiUsers", Text: "About Us"},
			Title:           "Crafting Digital",
			HighlightedText: "Excellence",
			Subtitle:        "A team of developers, designers and strategists building exceptional digital experiences.",
		},
		{
			Page:            "services",
			Badge:           models.Badge{Icon: "FiZap", Text: "What We Do"},
			Title:           "Our",
			HighlightedText: "Services",
			Subtitle:        "Digital solutions designed to transform your business and drive measurable growth.",
		},
		{
			Page:            "portfolio",
			Badge:           models.Badge{Icon: "FiLayers", Text: "Our Work"},
			Title:           "Selected",
			HighlightedText: "Projects",
			Subtitle:        "Explore projects that transformed businesses and exceeded expectations.",
		},
		{
			Page:            "contact",
			Badge:           models.Badge{Icon: "FiMail", Text: "Get In Touch"},
			Title:           "Let's",
			HighlightedText: "Connect",
			Subtitle:        "Have a project in mind? Send us a message and we'll respond as soon as possible.",
		},
	}
}

func companyInfo() *models.CompanyInfo {
	return &models.CompanyInfo{
		Name:        "seosites",
		Tagline:     "Transforming Ideas Into Digital Excellence",
		FoundedYear: 2014,
		Story:       "Founded in 2014, seosites began with a simple mission: help businesses use digital technology to grow.",
		Mission:     "To empower businesses through innovative digital solutions that drive growth and create lasting value.",
		Vision:      "To be the most trusted digital partner for businesses seeking to thrive in the digital age.",
		Values: []models.CompanyValue{
			{Icon: "FiTarget", Title: "Client-Focused", Description: "Your success is our success.", Order: 1},
			{Icon: "FiHeart", Title: "Passionate", Description: "We love what we do and it shows in our work.", Order: 2},
			{Icon: "FiZap", Title: "Innovative", Description: "We keep exploring new technologies and approaches.", Order: 3},
			{Icon: "FiAward", Title: "Quality-Driven", Description: "We never compromise on quality.", Order: 4},
		},
		Contact: models.Contact{
			Email:   "hello@seosites.com",
			Phone:   "+1 (555) 123-4567",
			Address: "123 Business Street, Suite 100, San Francisco, CA 94102",
		},
		Social: models.Social{
			Twitter:   "https://twitter.com/seosites",
			LinkedIn:  "https://linkedin.com/company/seosites",
			GitHub:    "https://github.com/seosites",
			Facebook:  "https://facebook.com/seosites",
			Instagram: "https://instagram.com/seosites",
		},
	}
}

func processSteps() []*models.ProcessStep {
	return []*models.ProcessStep{
		{Step: "01", Title: "Discovery", Description: "We learn your business goals, challenges, and target audience.", Order: 1},
		{Step: "02", Title: "Strategy", Description: "We create a roadmap tailored to your needs and objectives.", Order: 2},
		{Step: "03", Title: "Development", Description: "Our team brings your vision to life.", Order: 3},
		{Step: "04", Title: "Launch & Support", Description: "A smooth launch and ongoing support to keep things running.", Order: 4},
	}
}
