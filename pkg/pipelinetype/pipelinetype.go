package pipelinetype

import (
	"github.com/pkg/errors"
)

// Type identifies the kind of machine-learning task a model performs.
type Type string

// Natural-language processing.
const (
	TextClassification     Type = "text-classification"
	TokenClassification    Type = "token-classification"
	TableQuestionAnswering Type = "table-question-answering"
	QuestionAnswering      Type = "question-answering"
	ZeroShotClassification Type = "zero-shot-classification"
	Translation            Type = "translation"
	Summarization          Type = "summarization"
	Conversational         Type = "conversational"
	FeatureExtraction      Type = "feature-extraction"
	TextGeneration         Type = "text-generation"
	Text2TextGeneration    Type = "text2text-generation"
	FillMask               Type = "fill-mask"
)

// Audio.
const (
	TextToSpeech               Type = "text-to-speech"
	AutomaticSpeechRecognition Type = "automatic-speech-recognition"
	AudioSourceSeparation      Type = "audio-source-separation"
	VoiceActivityDetection     Type = "voice-activity-detection"
)

// Computer vision.
const (
	ImageClassification Type = "image-classification"
	ObjectDetection     Type = "object-detection"
	ImageSegmentation   Type = "image-segmentation"
)

// Domain groups pipeline types by the kind of data they work on.
type Domain string

const (
	NLP            Domain = "nlp"
	Audio          Domain = "audio"
	ComputerVision Domain = "computer-vision"
)

type group struct {
	domain Domain
	name   string
	// types are ordered by decreasing specificity.
	types []Type
}

var groups = []group{
	{
		domain: NLP,
		name:   "Natural Language Processing",
		types: []Type{
			TextClassification,
			TokenClassification,
			TableQuestionAnswering,
			QuestionAnswering,
			ZeroShotClassification,
			Translation,
			Summarization,
			Conversational,
			FeatureExtraction,
			TextGeneration,
			Text2TextGeneration,
			FillMask,
		},
	},
	{
		domain: Audio,
		name:   "Audio",
		types: []Type{
			TextToSpeech,
			AutomaticSpeechRecognition,
			AudioSourceSeparation,
			VoiceActivityDetection,
		},
	},
	{
		domain: ComputerVision,
		name:   "Computer Vision",
		types: []Type{
			ImageClassification,
			ObjectDetection,
			ImageSegmentation,
		},
	},
}

var prettyNames = map[Type]string{
	TextClassification:     "Text Classification",
	TokenClassification:    "Token Classification",
	TableQuestionAnswering: "Table Question Answering",
	QuestionAnswering:      "Question Answering",
	ZeroShotClassification: "Zero-Shot Classification",
	Translation:            "Translation",
	Summarization:          "Summarization",
	Conversational:         "Conversational",
	FeatureExtraction:      "Feature Extraction",
	TextGeneration:         "Text Generation",
	Text2TextGeneration:    "Text2Text Generation",
	FillMask:               "Fill-Mask",

	TextToSpeech:               "Text-to-Speech",
	AutomaticSpeechRecognition: "Automatic Speech Recognition",
	AudioSourceSeparation:      "Audio Source Separation",
	VoiceActivityDetection:     "Voice Activity Detection",

	ImageClassification: "Image Classification",
	ObjectDetection:     "Object Detection",
	ImageSegmentation:   "Image Segmentation",
}

var (
	ErrDuplicateType      = errors.New("pipeline type declared more than once")
	ErrDuplicateDomain    = errors.New("domain declared more than once")
	ErrMissingPrettyName  = errors.New("pipeline type has no pretty name")
	ErrUnknownPrettyName  = errors.New("pretty name for undeclared pipeline type")
	ErrMissingDomainName  = errors.New("domain has no pretty name")
	ErrInvalidTypeLiteral = errors.New("pipeline type must not be empty")
)

type registry struct {
	types   []Type
	domains []Domain
	rank    map[Type]int
	domain  map[Type]Domain
	byGroup map[Domain]group
}

var reg = mustBuild(groups, prettyNames)

func mustBuild(groups []group, names map[Type]string) *registry {
	r, err := build(groups, names)
	if err != nil {
		panic(err)
	}

	return r
}

// build flattens the domain groups and checks that the label table covers exactly the declared types.
func build(groups []group, names map[Type]string) (*registry, error) {
	r := &registry{
		rank:    make(map[Type]int),
		domain:  make(map[Type]Domain),
		byGroup: make(map[Domain]group),
	}

	for _, grp := range groups {
		if _, ok := r.byGroup[grp.domain]; ok {
			return nil, errors.Wrapf(ErrDuplicateDomain, "domain %q", grp.domain)
		}
		if grp.name == "" {
			return nil, errors.Wrapf(ErrMissingDomainName, "domain %q", grp.domain)
		}

		r.byGroup[grp.domain] = grp
		r.domains = append(r.domains, grp.domain)

		for _, t := range grp.types {
			if t == "" {
				return nil, errors.Wrapf(ErrInvalidTypeLiteral, "domain %q", grp.domain)
			}
			if _, ok := r.rank[t]; ok {
				return nil, errors.Wrapf(ErrDuplicateType, "type %q", t)
			}
			if names[t] == "" {
				return nil, errors.Wrapf(ErrMissingPrettyName, "type %q", t)
			}

			r.rank[t] = len(r.types)
			r.domain[t] = grp.domain
			r.types = append(r.types, t)
		}
	}

	for t := range names {
		if _, ok := r.rank[t]; !ok {
			return nil, errors.Wrapf(ErrUnknownPrettyName, "type %q", t)
		}
	}

	return r, nil
}

// All returns every pipeline type in declaration order.
func All() []Type {
	out := make([]Type, len(reg.types))
	copy(out, reg.types)

	return out
}

// Parse returns the pipeline type named id. Identifiers are matched exactly.
func Parse(id string) (Type, error) {
	t := Type(id)
	if !t.IsValid() {
		return "", lookupError(id)
	}

	return t, nil
}

// PrettyName returns the display label of the pipeline type named id.
func PrettyName(id string) (string, error) {
	t, err := Parse(id)
	if err != nil {
		return "", err
	}

	return t.PrettyName(), nil
}

// Default returns the most specific of the candidates, i.e. the one declared first. Candidates that are not members
// of the registry are ignored; ok is false when none is.
func Default(candidates ...Type) (best Type, ok bool) {
	bestRank := -1
	for _, c := range candidates {
		r := c.Rank()
		if r < 0 {
			continue
		}
		if bestRank < 0 || r < bestRank {
			best, bestRank = c, r
		}
	}

	return best, bestRank >= 0
}

// Domains returns every domain in declaration order.
func Domains() []Domain {
	out := make([]Domain, len(reg.domains))
	copy(out, reg.domains)

	return out
}

func (t Type) String() string {
	return string(t)
}

// IsValid reports whether t is a member of the registry.
func (t Type) IsValid() bool {
	_, ok := reg.rank[t]

	return ok
}

// PrettyName returns the display label of t, or an empty string if t is not a member of the registry.
func (t Type) PrettyName() string {
	return prettyNames[t]
}

// Domain returns the domain t belongs to, or an empty Domain if t is not a member of the registry.
func (t Type) Domain() Domain {
	return reg.domain[t]
}

// Rank returns the position of t in declaration order, or -1 if t is not a member of the registry.
// A lower rank means a more specific type.
func (t Type) Rank() int {
	r, ok := reg.rank[t]
	if !ok {
		return -1
	}

	return r
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, lookupError(string(t))
	}

	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

func (d Domain) String() string {
	return string(d)
}

// PrettyName returns the display label of d, or an empty string for an unknown domain.
func (d Domain) PrettyName() string {
	return reg.byGroup[d].name
}

// Types returns the pipeline types of d by decreasing specificity.
func (d Domain) Types() []Type {
	grp, ok := reg.byGroup[d]
	if !ok {
		return nil
	}

	out := make([]Type, len(grp.types))
	copy(out, grp.types)

	return out
}
