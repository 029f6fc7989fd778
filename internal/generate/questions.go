package generate

import "github.com/jonathan/placement-advisor/internal/types"

// MaxQuestions caps the generated interview question list.
const MaxQuestions = 10

// genericQuestions is the fallback list used when no skill-specific question
// matched at all.
var genericQuestions = []string{
	"Tell me about yourself and your technical background.",
	"What projects have you worked on? Explain your role.",
	"Why do you want to work at our company?",
	"Where do you see yourself in 5 years?",
	"What are your strengths and weaknesses?",
	"Describe a challenging problem you solved.",
	"How do you stay updated with new technologies?",
	"Explain your approach to learning a new technology.",
	"How do you handle conflicts in a team?",
	"What questions do you have for us?",
}

// Questions selects likely interview questions by scanning skill presence in
// a fixed priority order (core CS, languages, web, data, cloud, testing) and
// returns at most MaxQuestions. With no matches it falls back to the generic
// list.
func Questions(skills types.ExtractedSkills) []string {
	questions := make([]string, 0)

	if contains(skills.CoreCS, "DSA") {
		questions = append(questions,
			"How would you optimize search in a sorted array? Compare linear vs binary search.",
			"Explain the time and space complexity of merge sort and quick sort.",
			"When would you use a hash table vs a balanced BST?",
			"How do you detect a cycle in a linked list?",
			"Explain dynamic programming with a real example.",
		)
	}
	if contains(skills.CoreCS, "OOP") {
		questions = append(questions,
			"Explain the four pillars of OOP with examples.",
			"What is the difference between abstraction and encapsulation?",
			"When would you use inheritance vs composition?",
			"Explain the SOLID principles and why they matter.",
		)
	}
	if contains(skills.CoreCS, "DBMS") {
		questions = append(questions,
			"Explain database normalization and its various forms.",
			"What is indexing and when does it help vs hurt performance?",
			"Explain ACID properties and why they are important.",
			"Compare SQL vs NoSQL databases. When would you use each?",
		)
	}
	if contains(skills.CoreCS, "OS") {
		questions = append(questions,
			"Explain the difference between processes and threads.",
			"What is virtual memory and how does it work?",
			"Explain deadlock and how to prevent it.",
			"Compare different CPU scheduling algorithms.",
		)
	}
	if contains(skills.CoreCS, "Networks") {
		questions = append(questions,
			"Explain the OSI model and its layers.",
			"What is the difference between TCP and UDP?",
			"How does HTTPS work? Explain the handshake process.",
			"What is DNS and how does it resolve domain names?",
		)
	}

	if contains(skills.Languages, "Java") {
		questions = append(questions,
			"Explain the Java memory model and garbage collection.",
			"What is the difference between String, StringBuilder, and StringBuffer?",
			"Explain Java generics and type erasure.",
			"What are the differences between abstract classes and interfaces?",
		)
	}
	if contains(skills.Languages, "Python") {
		questions = append(questions,
			"Explain Python decorators with examples.",
			"What are generators and how do they differ from iterators?",
			"Explain the GIL and its impact on multithreading.",
			"What is the difference between lists and tuples?",
		)
	}
	if contains(skills.Languages, "JavaScript") || contains(skills.Languages, "TypeScript") {
		questions = append(questions,
			"Explain closures in JavaScript with an example.",
			"What is the event loop and how does it work?",
			"Explain the difference between var, let, and const.",
			"What are promises and how do they differ from async/await?",
		)
	}
	if contains(skills.Languages, "C++") {
		questions = append(questions,
			"Explain pointers and references in C++.",
			"What is the difference between stack and heap memory?",
			"Explain virtual functions and polymorphism.",
			"What are smart pointers and why are they useful?",
		)
	}

	if contains(skills.Web, "React") {
		questions = append(questions,
			"Explain React state management options (useState, useReducer, Context, Redux).",
			"What is the virtual DOM and how does React use it?",
			"Explain useEffect and its dependency array.",
			"What are React hooks and what problems do they solve?",
		)
	}
	if contains(skills.Web, "Node.js") {
		questions = append(questions,
			"Explain the Node.js event-driven architecture.",
			"What is the difference between blocking and non-blocking I/O?",
			"How does the Node.js module system work?",
			"Explain clustering in Node.js and its benefits.",
		)
	}
	if contains(skills.Web, "REST") || contains(skills.Web, "GraphQL") {
		questions = append(questions,
			"Design a RESTful API for a blogging platform.",
			"What are the differences between REST and GraphQL?",
			"Explain HTTP methods and their appropriate use cases.",
			"How would you version your API?",
		)
	}

	if contains(skills.Data, "SQL") {
		questions = append(questions,
			"Write a query to find the second highest salary.",
			"Explain JOINs and their different types with examples.",
			"What are window functions and when would you use them?",
			"How would you optimize a slow-running query?",
		)
	}
	if contains(skills.Data, "MongoDB") {
		questions = append(questions,
			"Explain the document model in MongoDB.",
			"When would you choose MongoDB over a relational database?",
			"Explain sharding and replication in MongoDB.",
			"How do you design schemas for NoSQL databases?",
		)
	}
	if contains(skills.Data, "Redis") {
		questions = append(questions,
			"What are the common use cases for Redis?",
			"Explain Redis data structures and their applications.",
			"How would you handle cache invalidation?",
			"What is the difference between caching and session storage?",
		)
	}

	if contains(skills.Cloud, "AWS") || contains(skills.Cloud, "Azure") || contains(skills.Cloud, "GCP") {
		questions = append(questions,
			"Explain the benefits of cloud computing over on-premise.",
			"What is auto-scaling and how does it work?",
			"Explain the difference between IaaS, PaaS, and SaaS.",
			"How would you design a highly available architecture?",
		)
	}
	if contains(skills.Cloud, "Docker") {
		questions = append(questions,
			"What is containerization and how does Docker work?",
			"Explain the difference between images and containers.",
			"What is a Dockerfile and what are its key instructions?",
			"How do you manage multi-container applications?",
		)
	}
	if contains(skills.Cloud, "Kubernetes") {
		questions = append(questions,
			"Explain Kubernetes architecture and its components.",
			"What are pods, deployments, and services?",
			"How does Kubernetes handle scaling?",
			"Explain ConfigMaps and Secrets in Kubernetes.",
		)
	}
	if contains(skills.Cloud, "CI/CD") {
		questions = append(questions,
			"What is CI/CD and why is it important?",
			"Explain the difference between continuous integration and continuous deployment.",
			"How would you set up a CI/CD pipeline?",
			"What are common CI/CD tools and their use cases?",
		)
	}

	if len(skills.Testing) > 0 {
		questions = append(questions,
			"Explain the difference between unit, integration, and end-to-end testing.",
			"What is test-driven development (TDD)?",
			"How do you mock dependencies in tests?",
			"What are the qualities of a good test suite?",
		)
	}

	if len(questions) == 0 {
		questions = append(questions, genericQuestions...)
	}

	if len(questions) > MaxQuestions {
		questions = questions[:MaxQuestions]
	}
	return questions
}
