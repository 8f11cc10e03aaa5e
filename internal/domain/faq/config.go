package faq

// EmbeddingMode identifies the token embedding variant.
type EmbeddingMode string

const (
	// ModeWord2Vec trains whole-word vectors; unseen tokens have no representation.
	ModeWord2Vec EmbeddingMode = "word2vec"
	// ModeFastText adds character n-gram vectors so unseen tokens can still be encoded.
	ModeFastText EmbeddingMode = "fasttext"
)

// DefaultFallbackAnswer is returned when no catalog entry clears the threshold.
const DefaultFallbackAnswer = "Atsiprašau, bet negaliu rasti tinkamo atsakymo į jūsų klausimą. " +
	"Prašome kreiptis į klientų aptarnavimo centrą telefonu 1888 arba atvykti į filialą."

// Config holds construction-time knobs for the FAQ matching core.
// All fields are immutable for the life of the service instance.
type Config struct {
	Mode                EmbeddingMode
	VectorSize          int
	Window              int
	MinCount            int
	Epochs              int
	NegativeSamples     int
	LearningRate        float64
	MinN                int
	MaxN                int
	SubwordBuckets      int
	Seed                int64
	SimilarityThreshold float64
	FallbackAnswer      string
	TopRecommendations  int

	// Stopwords overrides the base stopword list. Empty means the embedded
	// Lithuanian list. The supplementary function words are always added.
	Stopwords []string
}

func (c Config) withDefaults() Config {
	if c.Mode != ModeFastText {
		c.Mode = ModeWord2Vec
	}
	if c.VectorSize <= 0 {
		c.VectorSize = 100
	}
	if c.Window <= 0 {
		c.Window = 5
	}
	if c.MinCount <= 0 {
		c.MinCount = 1
	}
	if c.Epochs <= 0 {
		c.Epochs = 15
	}
	if c.NegativeSamples <= 0 {
		c.NegativeSamples = 5
	}
	if c.LearningRate <= 0 {
		c.LearningRate = 0.025
	}
	if c.MinN <= 0 {
		c.MinN = 3
	}
	if c.MaxN < c.MinN {
		c.MaxN = 6
	}
	if c.SubwordBuckets <= 0 {
		c.SubwordBuckets = 1 << 17
	}
	if c.Seed == 0 {
		c.Seed = 1337
	}
	if c.SimilarityThreshold <= 0 {
		c.SimilarityThreshold = 0.3
	}
	if c.FallbackAnswer == "" {
		c.FallbackAnswer = DefaultFallbackAnswer
	}
	if c.TopRecommendations <= 0 {
		c.TopRecommendations = 10
	}
	return c
}
