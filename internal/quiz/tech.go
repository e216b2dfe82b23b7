package quiz

var techTrack = Track{
	Background: BackgroundTech,
	Screens: []Screen{
		{
			ID:              "who-you-are",
			InitialChatText: "Hey there! Let's start by understanding where you are today in your tech journey.",
			Questions: []Question{
				{
					ID:   "currentRole",
					Text: "What's your current role in the tech world?",
					Options: []Option{
						{Value: "swe-product", Label: "Software Engineer - Product Company"},
						{Value: "swe-service", Label: "Software Engineer - Service Company"},
						{Value: "devops", Label: "DevOps / Cloud / Infrastructure Engineer"},
						{Value: "qa-support", Label: "QA / Support / Other Technical Role"},
					},
				},
				{
					ID:   "experience",
					Text: "How many years have you been in the tech industry?",
					Options: []Option{
						{Value: "0-2", Label: "0-2 years"},
						{Value: "2-3", Label: "2-3 years"},
						{Value: "3-5", Label: "3-5 years"},
						{Value: "5-8", Label: "5-8 years"},
						{Value: "8+", Label: "8+ years"},
					},
				},
				{
					ID:             "currentSkill",
					Text:           "Where are you currently investing most of your learning time?",
					DynamicOptions: true,
					OptionsByRole: map[string][]Option{
						"swe-product": {
							{Value: "backend", Label: "Backend development & APIs"},
							{Value: "frontend", Label: "Frontend development & UI"},
							{Value: "fullstack", Label: "Full-stack development"},
							{Value: "system-design", Label: "System design & architecture"},
						},
						"swe-service": {
							{Value: "enterprise", Label: "Enterprise stack (Java/.NET)"},
							{Value: "web", Label: "Web development"},
							{Value: "database", Label: "Database & backend work"},
							{Value: "learning-product", Label: "Learning product company skills"},
						},
						"devops": {
							{Value: "cloud", Label: "Cloud platforms (AWS/Azure/GCP)"},
							{Value: "containers", Label: "Container & orchestration (Docker/K8s)"},
							{Value: "cicd", Label: "CI/CD & automation"},
							{Value: "iac", Label: "Infrastructure as Code"},
						},
						"qa-support": {
							{Value: "automation", Label: "Test automation & QA"},
							{Value: "sysadmin", Label: "System administration"},
							{Value: "learning-dev", Label: "Learning software development"},
							{Value: "infrastructure", Label: "Infrastructure & operations"},
						},
					},
				},
			},
			ChatResponses: map[string]map[string]string{
				"currentRole": {
					"swe-product": "Great! Product companies offer amazing learning opportunities and cutting-edge tech stacks.",
					"swe-service": "Got it! Many engineers successfully transition from service to product companies. Let's chart your path forward.",
					"devops":      "Awesome! DevOps and infrastructure engineers are in incredibly high demand right now.",
					"qa-support":  "Perfect! Many successful engineers started in QA/support roles. Let's build your advancement path.",
				},
				"experience": {
					"0-2": "Early career is the best time to build strong foundations! The investments you make now will compound for years.",
					"2-3": "Great timing! You're building solid experience. This is when intentional skill development pays off.",
					"3-5": "You're at a sweet spot! This is when career trajectories really diverge based on strategic choices.",
					"5-8": "Solid experience! Time to optimize and level up to senior roles or high-growth opportunities.",
					"8+":  "Impressive journey! With 8+ years, you can target staff/principal roles or technical leadership positions.",
				},
			},
		},
		{
			ID:              "where-you-want-to-go",
			InitialChatText: "Perfect! Now let's talk about your aspirations and where you want to go next.",
			Questions: []Question{
				{
					ID:   "primaryGoal",
					Text: "What's your main career goal right now?",
					Options: []Option{
						{Value: "better-company", Label: "Move to a better company (same level)"},
						{Value: "level-up", Label: "Level up (senior role / promotion)"},
						{Value: "higher-comp", Label: "Higher compensation"},
						{Value: "switch-domain", Label: "Switch to different tech domain"},
						{Value: "upskilling", Label: "Upskilling in current role"},
					},
				},
				{
					ID:   "targetRole",
					Text: "What's your dream role?",
					Options: []Option{
						{Value: "senior-backend", Label: "Senior Backend Engineer"},
						{Value: "senior-fullstack", Label: "Senior Full-Stack Engineer"},
						{Value: "backend-sde", Label: "Backend / API Engineer"},
						{Value: "fullstack-sde", Label: "Full-Stack Engineer"},
						{Value: "data-ml", Label: "Data / ML Engineer"},
						{Value: "tech-lead", Label: "Tech Lead / Staff Engineer"},
					},
				},
				{
					ID:   "targetCompany",
					Text: "What kind of company are you targeting?",
					Options: []Option{
						{Value: "faang", Label: "FAANG / Big Tech"},
						{Value: "unicorns", Label: "Product Unicorns/Scaleups"},
						{Value: "startups", Label: "High Growth Startups"},
						{Value: "better-service", Label: "Better Service Company"},
						{Value: "evaluating", Label: "Still evaluating"},
					},
				},
			},
			ChatResponses: map[string]map[string]string{
				"primaryGoal": {
					"better-company": "Smart move! A better company can be a career multiplier - stronger teams, better learning, more opportunities.",
					"level-up":       "Love the ambition! Senior+ roles come with significant comp bumps and increased market value.",
					"higher-comp":    "100% valid! Many engineers are underpaid. Let's optimize your compensation to match your skills.",
					"switch-domain":  "Exciting! Switching domains can open entirely new opportunities. Timing and preparation are key.",
					"upskilling":     "Great mindset! Strategic upskilling can lead to promotions and make you indispensable in your role.",
				},
				"targetRole": {
					"senior-backend":   "Great choice! Senior backend roles offer high impact, excellent compensation, and clear career growth.",
					"senior-fullstack": "Versatile path! Senior full-stack engineers are highly sought after with strong compensation.",
					"backend-sde":      "Solid choice! Backend engineering is always in demand with great career prospects.",
					"fullstack-sde":    "Versatile! Full-stack roles offer broad learning and lots of opportunities across companies.",
					"data-ml":          "Future-focused! Data & ML roles are exploding with cutting-edge problems and high compensation.",
					"tech-lead":        "Leadership track! Staff+ roles combine technical depth with impact - gateway to principal/architect.",
				},
				"targetCompany": {
					"faang":          "Top tier! FAANG offers unmatched comp and resume value. Hard to crack but worth the effort.",
					"unicorns":       "Great target! Unicorns often match FAANG comp with more impact and better work-life balance.",
					"startups":       "High growth, high learning! Perfect if you want rapid growth and don't mind some uncertainty.",
					"better-service": "Pragmatic! Better service companies can be stepping stones to product companies or FAANG.",
					"evaluating":     "That's okay! Let's assess your profile first - clarity often comes after understanding your strengths.",
				},
			},
		},
		{
			ID:              "your-readiness",
			InitialChatText: "Almost there! Let's assess your current preparation level to identify focus areas.",
			Questions: []Question{
				{
					ID:         "problemSolving",
					Text:       "How much have you been practicing coding problems recently?",
					HelperText: "Think about the last 3 months on platforms like LeetCode or HackerRank",
					Options: []Option{
						{Value: "100+", Label: "Very Active (100+ problems)"},
						{Value: "51-100", Label: "Moderately Active (50-100 problems)"},
						{Value: "11-50", Label: "Somewhat Active (10-50 problems)"},
						{Value: "0-10", Label: "Not Active (0-10 problems)"},
					},
				},
				{
					ID:          "systemDesign",
					Text:        "How comfortable are you with system design?",
					Conditional: true,
					ShowIf:      ProblemSolvingPracticed,
					Options: []Option{
						{Value: "multiple", Label: "Led design discussions"},
						{Value: "once", Label: "Participated in discussions"},
						{Value: "learning", Label: "Self-learning only"},
						{Value: "not-yet", Label: "Not yet, will learn"},
					},
				},
				{
					ID:         "portfolio",
					Text:       "How active is your GitHub / GitLab profile?",
					HelperText: "Projects show practical experience to recruiters",
					Options: []Option{
						{Value: "active-5+", Label: "Active (5+ public repos)"},
						{Value: "limited-1-5", Label: "Limited (1-5 repos)"},
						{Value: "inactive", Label: "Inactive (old activity)"},
						{Value: "none", Label: "No portfolio yet"},
					},
				},
			},
			ChatResponses: map[string]map[string]string{
				"problemSolving": {
					"100+":   "Wow! You're putting in serious work. 100+ problems puts you in top percentile for interview readiness!",
					"51-100": "Great consistency! You're building strong problem-solving muscles and good interview readiness.",
					"11-50":  "Good start! You've got the foundation - now let's ramp up consistency to excel at interviews.",
					"0-10":   "No worries! Many successful engineers start here. Let's build a solid, consistent practice routine together.",
				},
				"systemDesign": {
					"multiple": "Excellent! Leading design discussions shows senior-level thinking. You're ahead of most candidates.",
					"once":     "Good exposure! Real-world experience is valuable. Now let's deepen those system design skills.",
					"learning": "Smart! Self-learning shows initiative. Let's move from theory to practice with mock interviews.",
					"not-yet":  "Perfect timing! System design is very learnable. I'll guide you based on your experience level.",
				},
				"portfolio": {
					"active-5+":   "Fantastic! An active portfolio is your best resume. Make sure READMEs are polished and projects are well-documented.",
					"limited-1-5": "Good start! Having a few projects shows initiative. Focus on quality over quantity - add tests and documentation.",
					"inactive":    "Time to revive it! Upload recent work or practice projects. Recruiters check GitHub - make it count.",
					"none":        "No worries! Creating a portfolio is easier than you think. Start by uploading practice code and course projects.",
				},
			},
		},
	},
}
