package catalog

// KnownDuplicateRoutes lists routes that are intentionally declared by more
// than one entry. "Shell Scripting & Automation" and "Linux Mastery" both
// point at /linux; Check reports it as a warning instead of failing.
var KnownDuplicateRoutes = []string{"/linux"}

var lessons = []LessonDescriptor{
	{
		Title:         "Getting Started",
		Route:         "/getting-started",
		Icon:          IconRocket,
		Description:   "Your introduction to Linux - what it is, why it matters, and how to get started",
		Level:         LevelBeginner,
		Featured:      true,
		EstimatedTime: "30 min",
		Topics:        []string{"What is Linux?", "Linux Distributions", "Installation Guide", "First Boot Setup"},
	},
	{
		Title:         "Foundation Concepts",
		Route:         "/foundation",
		Icon:          IconLayers,
		Description:   "Core concepts every Linux user must understand",
		Level:         LevelBeginner,
		EstimatedTime: "45 min",
		Topics:        []string{"Filesystem Hierarchy", "Terminal Basics", "Package Managers", "Environment Variables"},
	},
	{
		Title:         "Essential Commands",
		Route:         "/commands",
		Icon:          IconTerminal,
		Description:   "Master essential Linux commands with practical examples",
		Level:         LevelBeginner,
		Featured:      true,
		EstimatedTime: "2 hours",
		Topics:        []string{"Navigation Commands", "File Operations", "Text Processing", "Process Management", "System Monitoring"},
	},
	{
		Title:         "System Administration",
		Route:         "/system-admin",
		Icon:          IconSettings,
		Description:   "Learn to manage and maintain Linux systems effectively",
		Level:         LevelIntermediate,
		EstimatedTime: "1.5 hours",
		Topics:        []string{"User Management", "Service Control", "Cron Jobs", "Log Management", "System Performance"},
	},
	{
		Title:         "Networking Mastery",
		Route:         "/networking",
		Icon:          IconNetwork,
		Description:   "Comprehensive networking concepts and troubleshooting",
		Level:         LevelIntermediate,
		EstimatedTime: "2 hours",
		Topics:        []string{"TCP/IP Fundamentals", "Network Diagnostics", "Firewall Configuration", "SSH & Remote Access", "Network Tools"},
	},
	{
		Title:         "Shell Scripting & Automation",
		Route:         "/linux",
		Icon:          IconCode,
		Description:   "Automate tasks and create powerful scripts",
		Level:         LevelIntermediate,
		EstimatedTime: "2.5 hours",
		Topics:        []string{"Bash Fundamentals", "Variables & Parameters", "Control Structures", "Functions & Libraries", "Advanced Techniques"},
	},
	{
		Title:         "Offensive Security",
		Route:         "/offensive-security",
		Icon:          IconTarget,
		Description:   "Ethical hacking and penetration testing fundamentals",
		Level:         LevelAdvanced,
		EstimatedTime: "3 hours",
		Topics:        []string{"Reconnaissance", "Vulnerability Assessment", "Exploitation Techniques", "Post-Exploitation", "Reporting"},
	},
	{
		Title:         "Defensive Security",
		Route:         "/defensive-security",
		Icon:          IconShield,
		Description:   "Protect systems and detect threats effectively",
		Level:         LevelAdvanced,
		EstimatedTime: "2.5 hours",
		Topics:        []string{"System Hardening", "Intrusion Detection", "Log Analysis", "Incident Response", "Security Monitoring"},
	},
	{
		Title:         "Penetration Testing",
		Route:         "/pentesting",
		Icon:          IconCrosshair,
		Description:   "Plan, run, and report an authorized penetration test",
		Level:         LevelAdvanced,
		EstimatedTime: "2 hours",
		Topics:        []string{"Rules of Engagement", "Methodology", "Tooling", "Reporting"},
	},
	{
		Title:         "Windows Mastery",
		Route:         "/windows",
		Icon:          IconWindow,
		Description:   "The Windows side of a mixed environment, from PowerShell to Active Directory",
		Level:         LevelIntermediate,
		EstimatedTime: "1.5 hours",
		Topics:        []string{"PowerShell Basics", "Services & Processes", "Active Directory", "Event Logs"},
	},
	{
		Title:         "Linux Mastery",
		Route:         "/linux",
		Icon:          IconPenguin,
		Description:   "Put the pieces together: architecture, daily commands, and a hands-on exercise",
		Level:         LevelExpert,
		EstimatedTime: "1 hour",
		Topics:        []string{"Linux Architecture", "Everyday Commands", "Practice Exercise"},
	},
	{
		Title:         "Practical Labs",
		Route:         "/labs",
		Icon:          IconZap,
		Description:   "Hands-on projects to cement your knowledge",
		Level:         LevelAllLevels,
		Featured:      true,
		EstimatedTime: "5+ hours",
		Topics:        []string{"Web Server Setup", "Database Administration", "Container Management", "Security Scenarios", "Real-world Projects"},
	},
	{
		Title:         "Certifications & Career",
		Route:         "/certifications",
		Icon:          IconAward,
		Description:   "Professional certifications and career development",
		Level:         LevelExpert,
		EstimatedTime: "1 hour",
		Topics:        []string{"Linux+ Certification", "RHCSA/RHCE", "Security Certifications", "Career Paths", "Study Strategies"},
	},
	{
		Title:         "Master Challenges",
		Route:         "/challenges",
		Icon:          IconTrophy,
		Description:   "Ultimate tests of your Linux mastery",
		Level:         LevelExpert,
		EstimatedTime: "3+ hours",
		Topics:        []string{"Comprehensive Scenarios", "Time-based Challenges", "Real-world Problems", "Capstone Projects", "Certification Prep"},
	},
	{
		Title:       "Your Journey",
		Route:       "/journey",
		Icon:        IconMap,
		Description: "Where to go next and how to keep learning",
	},
}
