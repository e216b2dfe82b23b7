package quiz

// BackgroundChoice is one card on the background selection step.
type BackgroundChoice struct {
	Background  Background
	Title       string
	Description string
}

// BackgroundChoices lists the step-0 choices in display order.
var BackgroundChoices = []BackgroundChoice{
	{Background: BackgroundNonTech, Title: "Non-Tech / Career Switcher", Description: "Looking to transition into tech"},
	{Background: BackgroundTech, Title: "Tech Professional", Description: "Already working in tech"},
}

// IntroChatText is shown on the background selection step.
const IntroChatText = "Let's get started with your profile"

// Topic is an industry the user can mark as interesting on the goals step.
type Topic struct {
	Value    string
	Label    string
	Examples string
}

// Topics lists the goals-step industries in display order.
var Topics = []Topic{
	{Value: "ai-ml", Label: "AI & Machine Learning", Examples: "Fractal, Tiger Analytics, Niki.ai, etc."},
	{Value: "hardware-iot", Label: "Hardware & IoT", Examples: "Boat, Noise, Ather Energy, etc."},
	{Value: "fintech", Label: "FinTech", Examples: "Razorpay, PhonePe, Paytm, CRED, etc."},
	{Value: "healthtech", Label: "HealthTech", Examples: "PharmEasy, Practo, Healthify, 1mg, etc."},
	{Value: "edtech", Label: "EdTech", Examples: "Unacademy, upGrad, Vedantu, etc."},
	{Value: "ecommerce", Label: "E-commerce", Examples: "Flipkart, Meesho, Myntra, Nykaa, etc."},
	{Value: "social-consumer", Label: "Social Media & Consumer Apps", Examples: "ShareChat, Moj, Josh, InMobi, etc."},
	{Value: "enterprise-saas", Label: "Enterprise/SaaS", Examples: "Freshworks, Zoho, Chargebee, Postman, etc."},
	{Value: "gaming", Label: "Gaming", Examples: "Dream11, MPL, Games24x7, Winzo, etc."},
	{Value: "cybersecurity", Label: "Cybersecurity", Examples: "Quick Heal, Sequretek, Lucideus, etc."},
	{Value: "cloud-infrastructure", Label: "Cloud & Infrastructure", Examples: "Netmagic, CtrlS, Yotta, etc."},
	{Value: "blockchain-web3", Label: "Blockchain & Web3", Examples: "Polygon, CoinDCX, WazirX, etc."},
	{Value: "ar-vr", Label: "AR/VR & Metaverse", Examples: "Smartvizx, GMetri, Scapic, etc."},
	{Value: "mobility", Label: "Mobility & Transportation", Examples: "Ola, Swiggy, Zomato, Rapido, etc."},
	{Value: "climate-tech", Label: "Climate Tech & Sustainability", Examples: "ReNew Power, Ather, Sun Mobility, etc."},
}
