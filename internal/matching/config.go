package matching

// Weights controls how component scores are blended into the total.
// The defaults are skill-heavy: skills dominate for entry-level hiring,
// salary is usually negotiable.
type Weights struct {
	Skills     float64 `mapstructure:"skills"`
	Experience float64 `mapstructure:"experience"`
	Location   float64 `mapstructure:"location"`
	Salary     float64 `mapstructure:"salary"`
}

// Program describes one training track and the job-text keywords that
// indicate a posting belongs to its domain.
type Program struct {
	Name     string   `mapstructure:"name"`
	Keywords []string `mapstructure:"keywords"`
}

// CityGroup clusters district and city spellings under one metropolitan
// area. Major groups are big enough that moving between them is a
// realistic, if unwelcome, option.
type CityGroup struct {
	Name   string   `mapstructure:"name"`
	Cities []string `mapstructure:"cities"`
	Major  bool     `mapstructure:"major"`
}

// Config carries every tunable the engine uses. All constants here are
// heuristics; the defaults reproduce the behaviour the scoring bands were
// calibrated against. Zero-valued sections fall back to defaults in New.
type Config struct {
	Weights          Weights             `mapstructure:"weights"`
	ExperienceLevels map[string]int      `mapstructure:"experience-levels"`
	SkillSynonyms    map[string][]string `mapstructure:"skill-synonyms"`
	Programs         []Program           `mapstructure:"programs"`
	CityGroups       []CityGroup         `mapstructure:"city-groups"`
	CulturalFit      float64             `mapstructure:"cultural-fit"`
	MaxExtraSkills   int                 `mapstructure:"max-extra-skills"`
}

// DefaultWeights is the blend the engine was tuned with.
var DefaultWeights = Weights{
	Skills:     0.45,
	Experience: 0.25,
	Location:   0.20,
	Salary:     0.10,
}

// DefaultExperienceLevels maps a job's experience label to the minimum
// years it implies. Only the relative ordering matters to the scorer.
var DefaultExperienceLevels = map[string]int{
	"trainee": 0,
	"intern":  0,
	"junior":  1,
	"mid":     2,
	"senior":  4,
	"lead":    6,
}

// DefaultSkillSynonyms maps a canonical skill spelling to the variants
// that should be treated as the same skill. Matching is case-insensitive
// and exact per variant; there is no fuzzy matching.
var DefaultSkillSynonyms = map[string][]string{
	"React.js":         {"React", "ReactJS", "React JS"},
	"Node.js":          {"Node", "NodeJS", "Node JS"},
	"PostgreSQL":       {"Postgres", "pg", "PostgreSQL DB"},
	"JavaScript":       {"JS", "Javascript", "ECMAScript"},
	"TypeScript":       {"TS", "Typescript", "Type Script"},
	"Machine Learning": {"ML", "AI", "Artificial Intelligence"},
	"User Experience":  {"UX", "User Experience Design"},
	"User Interface":   {"UI", "User Interface Design"},
	"RESTful API":      {"REST API", "API", "REST"},
	"CSS3":             {"CSS", "Cascading Style Sheets"},
	"HTML5":            {"HTML", "HyperText Markup Language"},
	"Git":              {"Version Control", "GitHub", "GitLab"},
	"Docker":           {"Containerization", "Container"},
	"AWS":              {"Amazon Web Services", "Cloud"},
	"Python":           {"Python3", "Py"},
}

// DefaultPrograms lists the supported training tracks and their domain
// keywords, based on the actual curricula.
var DefaultPrograms = []Program{
	{
		Name:     "Frontend Development",
		Keywords: []string{"frontend", "react", "javascript", "web developer", "ui developer"},
	},
	{
		Name:     "Backend Development",
		Keywords: []string{"backend", "python", "api", "server", "database"},
	},
	{
		Name:     "Data Science",
		Keywords: []string{"data scientist", "data analyst", "ml engineer", "analytics"},
	},
	{
		Name:     "Mobile Development",
		Keywords: []string{"mobile", "react native", "app developer", "ios", "android"},
	},
}

// DefaultCityGroups covers the metro areas most postings mention. The
// table is deliberately small; unknown locations still match by plain
// string equality.
var DefaultCityGroups = []CityGroup{
	{Name: "istanbul", Cities: []string{"istanbul", "beyoglu", "kadikoy", "besiktas"}, Major: true},
	{Name: "ankara", Cities: []string{"ankara", "cankaya", "kizilay"}, Major: true},
	{Name: "izmir", Cities: []string{"izmir", "bornova", "konak"}, Major: true},
	{Name: "bursa", Cities: []string{"bursa", "osmangazi"}},
	{Name: "antalya", Cities: []string{"antalya", "muratpasa"}},
}

const (
	// defaultCulturalFit is an assumed baseline for candidates coming out
	// of the supported programs, not a measured signal.
	defaultCulturalFit = 0.8

	defaultMaxExtraSkills = 3
)

// DefaultConfig returns a Config populated with every default table.
func DefaultConfig() Config {
	return Config{
		Weights:          DefaultWeights,
		ExperienceLevels: DefaultExperienceLevels,
		SkillSynonyms:    DefaultSkillSynonyms,
		Programs:         DefaultPrograms,
		CityGroups:       DefaultCityGroups,
		CulturalFit:      defaultCulturalFit,
		MaxExtraSkills:   defaultMaxExtraSkills,
	}
}

// withDefaults fills any zero-valued section so a partially specified
// config file still yields a usable engine.
func (c Config) withDefaults() Config {
	if c.Weights == (Weights{}) {
		c.Weights = DefaultWeights
	}
	if len(c.ExperienceLevels) == 0 {
		c.ExperienceLevels = DefaultExperienceLevels
	}
	if len(c.SkillSynonyms) == 0 {
		c.SkillSynonyms = DefaultSkillSynonyms
	}
	if len(c.Programs) == 0 {
		c.Programs = DefaultPrograms
	}
	if len(c.CityGroups) == 0 {
		c.CityGroups = DefaultCityGroups
	}
	if c.CulturalFit <= 0 {
		c.CulturalFit = defaultCulturalFit
	}
	if c.MaxExtraSkills <= 0 {
		c.MaxExtraSkills = defaultMaxExtraSkills
	}
	return c
}
