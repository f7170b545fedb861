package catalog

// Seed data for the Maharashtra HSC 12th Commerce curriculum.

const (
	subjectEconomics   = "Economics"
	subjectBookKeeping = "Book Keeping & Accountancy"
	subjectSecretarial = "Secretarial Practice"
	subjectOCM         = "Organization of Commerce and Management"
)

var seedSubjects = []Subject{
	{
		Board:       "Maharashtra",
		Standard:    "12",
		Name:        subjectEconomics,
		Stream:      "Commerce",
		Description: "Macro & micro economic concepts for HSC.",
		Icon:        "📈",
	},
	{
		Board:       "Maharashtra",
		Standard:    "12",
		Name:        subjectBookKeeping,
		Stream:      "Commerce",
		Description: "Financial accounting and statements.",
		Icon:        "📚",
	},
	{
		Board:       "Maharashtra",
		Standard:    "12",
		Name:        subjectSecretarial,
		Stream:      "Commerce",
		Description: "Company secretary duties and documentation.",
		Icon:        "📝",
	},
	{
		Board:       "Maharashtra",
		Standard:    "12",
		Name:        subjectOCM,
		Stream:      "Commerce",
		Description: "Business organization and management principles.",
		Icon:        "🏢",
	},
}

var seedChapters = map[string][]Chapter{
	subjectEconomics: {
		{Number: 1, Title: "Introduction to Micro Economics", Summary: "Basic concepts of micro economics."},
		{Number: 2, Title: "Utility Analysis", Summary: "Cardinal and ordinal utility."},
	},
	subjectBookKeeping: {
		{Number: 1, Title: "Partnership Final Accounts", Summary: "Final accounts of partnership firm."},
		{Number: 2, Title: "Admission of Partner", Summary: "Revaluation, goodwill, capital adjustments."},
	},
	subjectSecretarial: {
		{Number: 1, Title: "Company Correspondence", Summary: "Notices, agenda, minutes."},
		{Number: 2, Title: "Share Capital", Summary: "Issue and allotment of shares."},
	},
	subjectOCM: {
		{Number: 1, Title: "Principles of Management", Summary: "Planning, organizing, staffing, directing, controlling."},
		{Number: 2, Title: "Entrepreneurship Development", Summary: "Entrepreneurial characteristics and process."},
	},
}

var seedTopics = map[chapterKey][]Topic{
	{subjectEconomics, 1}: {
		{Title: "Meaning and Scope of Micro Economics", Content: "Micro economics studies the behaviour of individual economic units such as consumers, firms and resource owners."},
		{Title: "Features of Micro Economics", Content: "Price theory, partial equilibrium, slicing method and the assumption of ceteris paribus."},
		{Title: "Importance of Micro Economics", Content: "Helps in price determination, resource allocation and framing economic policies."},
	},
	{subjectEconomics, 2}: {
		{Title: "Concept of Utility", Content: "Utility is the want satisfying power of a commodity. It is subjective, relative and independent of usefulness."},
		{Title: "Types of Utility", Content: "Form, place, time and service utility, with total and marginal utility as measures."},
		{Title: "Law of Diminishing Marginal Utility", Content: "As consumption of a commodity increases, the marginal utility derived from each additional unit goes on diminishing."},
	},
	{subjectBookKeeping, 1}: {
		{Title: "Introduction to Partnership", Content: "Partnership is the relation between persons who have agreed to share profits of a business carried on by all or any of them acting for all."},
		{Title: "Trading and Profit & Loss Account", Content: "Preparation of trading account, profit and loss account and treatment of adjustments."},
		{Title: "Balance Sheet of a Firm", Content: "Classification of assets and liabilities and presentation of the firm's financial position."},
	},
	{subjectBookKeeping, 2}: {
		{Title: "Goodwill and its Valuation", Content: "Average profit, super profit and capitalisation methods of valuing goodwill on admission."},
		{Title: "Revaluation of Assets and Liabilities", Content: "Revaluation account records increase or decrease in the value of assets and liabilities at admission."},
		{Title: "Adjustment of Capitals", Content: "Capital accounts of partners adjusted in the new profit sharing ratio."},
	},
	{subjectSecretarial, 1}: {
		{Title: "Essentials of Good Correspondence", Content: "Conciseness, courtesy, clarity, correctness and completeness in company letters."},
		{Title: "Notices and Agenda", Content: "Drafting notices of meetings and preparing the agenda in consultation with the chairman."},
		{Title: "Minutes of Meetings", Content: "Minutes are the official record of business transacted at a meeting, signed by the chairman."},
	},
	{subjectSecretarial, 2}: {
		{Title: "Types of Share Capital", Content: "Authorised, issued, subscribed, called-up and paid-up capital of a company."},
		{Title: "Issue of Shares", Content: "Issue at par, premium and discount; public issue, rights issue and bonus issue."},
		{Title: "Allotment and Calls", Content: "Procedure of allotment, letters of allotment and regret, and making calls on shares."},
	},
	{subjectOCM, 1}: {
		{Title: "Nature of Management Principles", Content: "Management principles are universal, flexible and behavioural guidelines for managerial decision making."},
		{Title: "Fayol's Principles of Management", Content: "Division of work, authority and responsibility, unity of command, unity of direction and other principles of Henri Fayol."},
		{Title: "Taylor's Scientific Management", Content: "Science not rule of thumb, harmony not discord, and techniques such as time study and motion study."},
	},
	{subjectOCM, 2}: {
		{Title: "Concept of Entrepreneurship", Content: "Entrepreneurship is the process of identifying opportunities and organising resources to pursue them."},
		{Title: "Characteristics of an Entrepreneur", Content: "Risk bearing, innovation, self confidence, decision making ability and vision."},
		{Title: "Functions of an Entrepreneur", Content: "Innovation, risk taking, organisation building and promotion of new ventures."},
	},
}

var seedMCQs = map[chapterKey][]MCQ{
	{subjectEconomics, 1}: {
		{
			Question:    "Micro economics is also known as ____.",
			Options:     []string{"Income theory", "Price theory", "Growth theory", "Employment theory"},
			AnswerIndex: 1,
		},
		{
			Question:    "The term 'Micro' is derived from the Greek word ____.",
			Options:     []string{"Makros", "Mikros", "Micra", "Macron"},
			AnswerIndex: 1,
		},
	},
	{subjectEconomics, 2}: {
		{
			Question:    "Utility means ____.",
			Options:     []string{"usefulness of a commodity", "want satisfying power of a commodity", "value in exchange", "profit from sale"},
			AnswerIndex: 1,
		},
		{
			Question:    "Total utility is maximum when marginal utility is ____.",
			Options:     []string{"positive", "negative", "zero", "rising"},
			AnswerIndex: 2,
		},
	},
	{subjectBookKeeping, 1}: {
		{
			Question:    "In the absence of a partnership deed, partners share profits and losses ____.",
			Options:     []string{"in capital ratio", "equally", "in the ratio of work done", "as decided by the senior partner"},
			AnswerIndex: 1,
		},
		{
			Question:    "Prepaid expenses are shown on the ____ side of the balance sheet.",
			Options:     []string{"liabilities", "assets", "debit", "credit"},
			AnswerIndex: 1,
		},
	},
	{subjectBookKeeping, 2}: {
		{
			Question:    "Profit on revaluation of assets and liabilities is credited to ____.",
			Options:     []string{"old partners' capital accounts", "new partner's capital account", "all partners equally", "general reserve"},
			AnswerIndex: 0,
		},
		{
			Question:    "Goodwill brought in by an incoming partner is shared by the old partners in their ____ ratio.",
			Options:     []string{"new profit sharing", "capital", "sacrifice", "gaining"},
			AnswerIndex: 2,
		},
	},
	{subjectSecretarial, 1}: {
		{
			Question:    "Minutes of a meeting must be recorded within ____ days of the conclusion of the meeting.",
			Options:     []string{"15", "30", "45", "60"},
			AnswerIndex: 1,
		},
		{
			Question:    "The agenda of a meeting is prepared by the ____.",
			Options:     []string{"chairman", "auditor", "secretary", "managing director"},
			AnswerIndex: 2,
		},
	},
	{subjectSecretarial, 2}: {
		{
			Question:    "The maximum capital which a company is authorised to raise is called ____ capital.",
			Options:     []string{"paid-up", "issued", "authorised", "reserve"},
			AnswerIndex: 2,
		},
		{
			Question:    "Shares issued free of cost to existing equity shareholders are called ____ shares.",
			Options:     []string{"rights", "bonus", "preference", "deferred"},
			AnswerIndex: 1,
		},
	},
	{subjectOCM, 1}: {
		{
			Question:    "The principles of scientific management were developed by ____.",
			Options:     []string{"Henri Fayol", "F.W. Taylor", "Elton Mayo", "Peter Drucker"},
			AnswerIndex: 1,
		},
		{
			Question:    "'Unity of command' means an employee should receive orders from ____ superior.",
			Options:     []string{"every", "one", "no", "each senior"},
			AnswerIndex: 1,
		},
	},
	{subjectOCM, 2}: {
		{
			Question:    "EDP stands for ____.",
			Options:     []string{"Entrepreneurship Development Programme", "Economic Development Plan", "Enterprise Deployment Process", "Entrepreneur Direction Policy"},
			AnswerIndex: 0,
		},
		{
			Question:    "An entrepreneur is primarily a ____.",
			Options:     []string{"risk bearer", "salaried employee", "money lender", "government agent"},
			AnswerIndex: 0,
		},
	},
}
