// Package casebank holds the fixed ethics case: the prompt shown to
// students, the framework reference entries, and the model answer disclosed
// with ungated assessments. The evaluator copies this material into results
// but never interprets the prompt.
package casebank

import "github.com/caseprep/ethics-tutor/internal/rubric"

// Case is the question payload served to students. The model answer is
// deliberately not part of it.
type Case struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Prompt   string `json:"prompt"`
	Guidance string `json:"guidance"`
}

var Default = Case{
	ID:    "housing-frt-001",
	Title: "Facial recognition at Harbour Court",
	Prompt: "Harbour Court, a social housing provider, replaced the key-fob " +
		"entry system across its estates with facial-recognition door cameras. " +
		"Residents were not told in advance and were given no alternative way " +
		"in. The system was bought off the shelf and switched on without any " +
		"assessment of how it would affect residents; facial images are kept " +
		"on the supplier's servers indefinitely. Within weeks, several " +
		"residents, disproportionately from minority ethnic backgrounds, were " +
		"repeatedly refused entry to their own homes because the system failed " +
		"to recognise them.\n\n" +
		"What are the key ethical and legal failures in this rollout, why do " +
		"these failures matter for the people affected, and what should have " +
		"been done instead?",
	Guidance: "Write 100-250 words. Answers under 50 words are not scored.",
}

// Reference bundles the disclosure material for the evaluator.
func Reference() rubric.Reference {
	return rubric.Reference{Frameworks: Frameworks, ModelAnswer: ModelAnswer}
}

var Frameworks = []rubric.Framework{
	{
		Name: "UK GDPR",
		Expectation: "Personal data must be processed lawfully, fairly and " +
			"transparently, with a valid lawful basis identified before " +
			"processing begins. Biometric data used to identify people is " +
			"special category data and needs a further condition.",
		Case: "Residents were never told about the cameras and no lawful " +
			"basis was established for processing their facial images.",
	},
	{
		Name: "Data Protection Act 2018 (DPIA duty)",
		Expectation: "High-risk processing, which biometric identification " +
			"of the public plainly is, requires a data protection impact " +
			"assessment before deployment.",
		Case: "The rollout went ahead with no impact assessment of any kind.",
	},
	{
		Name: "Equality Act 2010",
		Expectation: "Service providers must not apply practices that put " +
			"people sharing a protected characteristic at a particular " +
			"disadvantage.",
		Case: "Higher misidentification rates locked minority ethnic " +
			"residents out of their homes, an indirectly discriminatory " +
			"outcome.",
	},
	{
		Name: "ICO guidance on biometric recognition",
		Expectation: "Biometric systems must be necessary and proportionate, " +
			"and a less intrusive alternative must be offered where people " +
			"cannot or will not enrol.",
		Case: "Key fobs already worked; removing them and mandating facial " +
			"recognition with no opt-out was disproportionate.",
	},
}

const ModelAnswer = "The rollout shows several distinct failures. First, " +
	"residents were given no notice and no choice: processing their facial " +
	"images began without consent, without transparency and without any " +
	"identified lawful basis, which UK GDPR requires before biometric data " +
	"is touched. Second, no DPIA was carried out even though biometric entry " +
	"control is clearly high-risk processing. Third, the system's accuracy " +
	"was never tested on the resident population, and its higher error rate " +
	"for minority ethnic residents produced discriminatory outcomes. Fourth, " +
	"storing images indefinitely on a supplier's servers ignores data " +
	"minimisation, retention limits and security of processing.\n\n" +
	"These failures matter because the people affected are residents trying " +
	"to enter their own homes. Being repeatedly refused entry is a concrete " +
	"harm, it falls unevenly on one group, and it corrodes trust between " +
	"residents and their landlord.\n\n" +
	"Harbour Court should have completed a DPIA before procurement, " +
	"consulted residents and obtained consent or identified another lawful " +
	"basis, tested and audited the system for bias and accuracy before " +
	"switch-on, kept the key-fob entry as an alternative, set strict " +
	"retention and security controls on stored images, and put a clear " +
	"policy and appeal route in place for residents the system fails."
