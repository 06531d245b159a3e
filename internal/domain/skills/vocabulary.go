package skills

import "strings"

// CommonSkills is the curated multi-domain phrase list scanned by the extractor.
var CommonSkills = []string{
	// Frontend
	"javascript", "html", "css", "react", "angular", "vue", "jquery", "typescript",
	"redux", "webpack", "babel", "sass", "less", "bootstrap", "tailwind", "material-ui",
	"responsive design", "web components", "pwa", "spa", "ssr",

	// Backend
	"node.js", "express", "django", "flask", "spring", "ruby on rails", "laravel",
	"asp.net", "php", "java", "python", "c#", "c++", "go", "rust", "kotlin", "scala",

	// Database
	"sql", "mysql", "postgresql", "mongodb", "firebase", "dynamodb", "redis", "elasticsearch",
	"cassandra", "oracle", "sqlite", "mariadb", "neo4j", "graphql",

	// DevOps & Cloud
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "gitlab ci", "github actions",
	"terraform", "ansible", "chef", "puppet", "prometheus", "grafana", "elk stack",
	"ci/cd", "microservices", "serverless",

	// Mobile
	"android", "ios", "swift", "react native", "flutter", "xamarin", "ionic", "cordova",
	"objective-c", "mobile development",

	// Other
	"git", "rest api", "soap", "json", "xml", "agile", "scrum", "tdd", "bdd",
	"machine learning", "ai", "data science", "big data", "blockchain",
	"security", "oauth", "jwt", "websockets", "testing", "ui/ux",
}

var SalesSkills = []string{
	"communication", "negotiation", "lead generation", "cold calling", "closing deals",
	"crm", "customer relationship management", "b2b sales", "b2c sales", "sales strategy",
	"product knowledge", "salesforce", "hubspot", "presentation skills", "active listening",
	"email marketing", "social selling", "pipeline management", "target achievement",
	"market research", "customer service", "networking", "upselling", "cross-selling",
	"objection handling", "sales forecasting", "territory management", "account management",
	"client relationship", "solution selling", "retail sales", "telemarketing", "inside sales",
	"outside sales", "quota attainment", "prospecting", "referral marketing", "pricing strategy",
	"consultative selling", "value proposition", "sales enablement", "customer acquisition",
	"sales analytics", "deal negotiation", "sales operations", "channel sales", "discovery call",
	"follow-up strategies", "competitive analysis", "event selling", "branding", "crm automation",
}

var ComputerScienceSkills = []string{
	// Programming Languages
	"python", "java", "c++", "c", "html", "css", "javascript", "typescript", "go",
	"ruby", "swift", "rust", "php", "kotlin", "r", "scala", "bash",

	// Web Development
	"react", "vue.js", "angular", "next.js", "node.js", "express.js", "svelte", "tailwind css",
	"bootstrap", "jquery",

	// Backend & API
	"django", "flask", "fastapi", "spring boot", "graphql", "rest api", "microservices",
	"api development", "socket programming",

	// Database
	"sql", "mysql", "postgresql", "sqlite", "oracle", "mongodb", "firebase", "cassandra",
	"redis", "neo4j",

	// DevOps & Tools
	"git", "github", "gitlab", "bitbucket", "docker", "kubernetes", "jenkins",
	"ansible", "terraform", "linux", "bash scripting", "ci/cd", "nginx",

	// Cloud Computing
	"aws", "azure", "gcp", "cloud functions", "serverless", "lambda", "s3", "ec2", "cloud run",

	// AI / ML
	"machine learning", "deep learning", "natural language processing", "computer vision",
	"tensorflow", "pytorch", "scikit-learn", "huggingface", "transformers", "openai api",

	// Data Science
	"pandas", "numpy", "matplotlib", "seaborn", "data cleaning", "data analysis",
	"feature engineering", "model evaluation", "data pipelines",

	// Software Engineering
	"object oriented programming", "functional programming", "data structures", "algorithms",
	"system design", "design patterns", "software architecture", "testing", "unit testing",
	"integration testing", "debugging", "code review", "version control",

	// Security
	"cybersecurity", "penetration testing", "vulnerability assessment", "authentication",
	"authorization", "encryption", "network security", "ethical hacking",

	// Other
	"blockchain", "smart contracts", "solidity", "web3", "data engineering", "etl",
	"data lakes", "hadoop", "spark", "airflow", "big data", "agile", "scrum",
}

// umbrellaRule infers a broad skill from narrower indicator keywords found in text.
// Kept as an ordered slice so extraction output is deterministic.
type umbrellaRule struct {
	Skill      string
	Indicators []string
}

var umbrellaRules = []umbrellaRule{
	{Skill: "react", Indicators: []string{"component", "jsx", "hooks", "redux"}},
	{Skill: "python", Indicators: []string{"django", "flask", "pandas", "numpy", "scipy"}},
	{Skill: "java", Indicators: []string{"spring", "hibernate", "maven", "gradle"}},
	{Skill: "cloud", Indicators: []string{"aws", "azure", "gcp", "serverless"}},
}

// titleRule maps a job-title phrase to the skills it implies.
type titleRule struct {
	Phrase string
	Skills []string
}

var titleRules = []titleRule{
	{Phrase: "java developer", Skills: []string{"java", "spring", "hibernate"}},
	{Phrase: "python developer", Skills: []string{"python", "django", "flask"}},
	{Phrase: "frontend developer", Skills: []string{"javascript", "html", "css", "react"}},
	{Phrase: "backend developer", Skills: []string{"api", "database", "server"}},
	{Phrase: "full stack", Skills: []string{"frontend", "backend", "full-stack"}},
	{Phrase: "node", Skills: []string{"node.js", "javascript", "express"}},
	{Phrase: "react", Skills: []string{"react", "javascript", "frontend"}},
	{Phrase: "angular", Skills: []string{"angular", "typescript", "frontend"}},
	{Phrase: "devops", Skills: []string{"docker", "kubernetes", "ci/cd"}},
	{Phrase: "data scientist", Skills: []string{"python", "machine learning", "data analysis"}},
	{Phrase: "mobile developer", Skills: []string{"mobile development", "android", "ios"}},
}

var skillAliases = map[string]string{
	"java script": "javascript",
	"java-script": "javascript",
	"dev o":       "devops",
	"html5":       "html",
	"py":          "python",
	"ml":          "machine learning",
	"ai/ml":       "ai",
}

// Vocabulary is the process-wide reference set of known skills. Built once at
// startup, read-only afterwards, so it is safe for concurrent use.
type Vocabulary struct {
	entries []string
	set     map[string]struct{}
}

func NewVocabulary(lists ...[]string) *Vocabulary {
	v := &Vocabulary{set: map[string]struct{}{}}
	for _, list := range lists {
		for _, s := range list {
			s = strings.ToLower(strings.TrimSpace(s))
			if s == "" {
				continue
			}
			if _, ok := v.set[s]; ok {
				continue
			}
			v.set[s] = struct{}{}
			v.entries = append(v.entries, s)
		}
	}
	return v
}

// DefaultVocabulary combines the sales and computer-science reference sets.
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary(SalesSkills, ComputerScienceSkills)
}

func (v *Vocabulary) Contains(skill string) bool {
	if v == nil {
		return false
	}
	_, ok := v.set[strings.ToLower(strings.TrimSpace(skill))]
	return ok
}

func (v *Vocabulary) Entries() []string {
	if v == nil {
		return nil
	}
	return v.entries
}

func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.entries)
}
