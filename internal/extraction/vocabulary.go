package extraction

// skillVocabulary is the fixed, ordered vocabulary of recognized skill
// tokens. The order of this list defines the order of KeySkills in the
// extracted record, so changing it changes public output ordering.
var skillVocabulary = []string{
	"python",
	"java",
	"javascript",
	"typescript",
	"golang",
	"rust",
	"c++",
	"c#",
	"ruby",
	"php",
	"swift",
	"kotlin",
	"scala",
	"sql",
	"nosql",
	"postgresql",
	"mysql",
	"mongodb",
	"redis",
	"elasticsearch",
	"kafka",
	"rabbitmq",
	"grpc",
	"rest",
	"graphql",
	"html",
	"css",
	"react",
	"angular",
	"vue",
	"node.js",
	"django",
	"flask",
	"spring",
	"docker",
	"kubernetes",
	"terraform",
	"ansible",
	"aws",
	"azure",
	"gcp",
	"linux",
	"git",
	"ci/cd",
	"jenkins",
	"prometheus",
	"grafana",
	"machine learning",
	"deep learning",
	"data science",
	"nlp",
	"microservices",
	"distributed systems",
	"agile",
	"scrum",
	"tdd",
	"devops",
	"security",
	"testing",
	"leadership",
}

// stopWords are tokens excluded from keyword extraction regardless of
// frequency. Tokens of length <= 3 are dropped before this set applies.
var stopWords = map[string]struct{}{
	"about":       {},
	"above":       {},
	"after":       {},
	"again":       {},
	"also":        {},
	"been":        {},
	"before":      {},
	"being":       {},
	"best":        {},
	"both":        {},
	"candidate":   {},
	"company":     {},
	"could":       {},
	"does":        {},
	"each":        {},
	"experience":  {},
	"from":        {},
	"have":        {},
	"having":      {},
	"ideal":       {},
	"into":        {},
	"join":        {},
	"looking":     {},
	"more":        {},
	"most":        {},
	"must":        {},
	"opportunity": {},
	"other":       {},
	"over":        {},
	"plus":        {},
	"position":    {},
	"role":        {},
	"should":      {},
	"skills":      {},
	"some":        {},
	"strong":      {},
	"such":        {},
	"team":        {},
	"than":        {},
	"that":        {},
	"their":       {},
	"them":        {},
	"then":        {},
	"there":       {},
	"these":       {},
	"they":        {},
	"this":        {},
	"through":     {},
	"under":       {},
	"were":        {},
	"what":        {},
	"when":        {},
	"where":       {},
	"which":       {},
	"while":       {},
	"will":        {},
	"with":        {},
	"work":        {},
	"working":     {},
	"would":       {},
	"year":        {},
	"years":       {},
	"your":        {},
}
