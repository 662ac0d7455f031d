package knowledge

import "campus-ai-be/internal/entity"

const basePdfURL = "https://kjsce.somaiya.edu/media/pdf/"

// Catalog returns the compiled-in curriculum catalog. It always succeeds and
// is the floor the knowledge base can never shrink below, whatever happens to
// the remote augmentation.
func Catalog() []entity.KnowledgeItem {
	return []entity.KnowledgeItem{
		// Computer Engineering, Sem 3
		{Id: "c3-1", Category: entity.KnowledgeCategoryTimetable, Title: "COMP Sem 3: Engineering Mathematics III", Content: "Laplace Transforms, Fourier Series, Complex Variables, and Statistical Techniques.", Link: basePdfURL + "COMP_Sem3_Maths.pdf"},
		{Id: "c3-2", Category: entity.KnowledgeCategoryTimetable, Title: "COMP Sem 3: Discrete Structures & Graph Theory", Content: "Set theory, Logic, Relations, Functions, and Graph Theory applications.", Link: basePdfURL + "COMP_Sem3_Discrete.pdf"},
		{Id: "c3-3", Category: entity.KnowledgeCategoryTimetable, Title: "COMP Sem 3: Data Structures", Content: "Analysis of algorithms, Stacks, Queues, Linked Lists, Trees, and Sorting/Searching.", Link: basePdfURL + "COMP_Sem3_DS.pdf"},
		{Id: "c3-4", Category: entity.KnowledgeCategoryTimetable, Title: "COMP Sem 3: Digital Logic & Computer Architecture", Content: "Combinational/Sequential circuits, Register transfer, and Control unit design.", Link: basePdfURL + "COMP_Sem3_DLCA.pdf"},
		{Id: "c3-5", Category: entity.KnowledgeCategoryTimetable, Title: "COMP Sem 3: Computer Graphics", Content: "Scanning, Clipping, Transformations, and 3D modeling fundamentals.", Link: basePdfURL + "COMP_Sem3_CG.pdf"},

		// Computer Engineering, Sem 4
		{Id: "c4-1", Category: entity.KnowledgeCategoryTimetable, Title: "COMP Sem 4: Engineering Mathematics IV", Content: "Matrix Theory, Probability Distributions, and Sampling Theory.", Link: basePdfURL + "COMP_Sem4_Maths.pdf"},
		{Id: "c4-2", Category: entity.KnowledgeCategoryTimetable, Title: "COMP Sem 4: Analysis of Algorithms", Content: "Complexity analysis, Divide & Conquer, Greedy, Dynamic Programming, and NP-completeness.", Link: basePdfURL + "COMP_Sem4_AOA.pdf"},
		{Id: "c4-3", Category: entity.KnowledgeCategoryTimetable, Title: "COMP Sem 4: Database Management Systems", Content: "Schema design, Normalization, SQL, Relational Algebra, and Transaction management.", Link: basePdfURL + "COMP_Sem4_DBMS.pdf"},
		{Id: "c4-4", Category: entity.KnowledgeCategoryTimetable, Title: "COMP Sem 4: Operating Systems", Content: "Process management, Deadlocks, Memory allocation, and File systems.", Link: basePdfURL + "COMP_Sem4_OS.pdf"},
		{Id: "c4-5", Category: entity.KnowledgeCategoryTimetable, Title: "COMP Sem 4: Microprocessors", Content: "8086 architecture, Instruction sets, and peripheral interfacing.", Link: basePdfURL + "COMP_Sem4_MP.pdf"},

		// Information Technology, Sem 3
		{Id: "i3-1", Category: entity.KnowledgeCategoryTimetable, Title: "IT Sem 3: Engineering Mathematics III", Content: "Applied mathematics for IT systems and signals.", Link: basePdfURL + "IT_Sem3_Maths.pdf"},
		{Id: "i3-2", Category: entity.KnowledgeCategoryTimetable, Title: "IT Sem 3: Data Structures & Analysis", Content: "Advanced data handling and performance metrics for IT.", Link: basePdfURL + "IT_Sem3_DSA.pdf"},
		{Id: "i3-3", Category: entity.KnowledgeCategoryTimetable, Title: "IT Sem 3: Database Management Systems", Content: "Relational model and query optimization.", Link: basePdfURL + "IT_Sem3_DBMS.pdf"},
		{Id: "i3-4", Category: entity.KnowledgeCategoryTimetable, Title: "IT Sem 3: Principle of Communications", Content: "Analog and digital communication foundations.", Link: basePdfURL + "IT_Sem3_Comm.pdf"},
		{Id: "i3-5", Category: entity.KnowledgeCategoryTimetable, Title: "IT Sem 3: Paradigm & Programming Fundamentals", Content: "Programming concepts and cross-paradigm logic.", Link: basePdfURL + "IT_Sem3_Prog.pdf"},

		// Information Technology, Sem 4
		{Id: "i4-1", Category: entity.KnowledgeCategoryTimetable, Title: "IT Sem 4: Engineering Mathematics IV", Content: "Linear algebra and probability for Information Technology.", Link: basePdfURL + "IT_Sem4_Maths.pdf"},
		{Id: "i4-2", Category: entity.KnowledgeCategoryTimetable, Title: "IT Sem 4: Computer Network & Network Design", Content: "OSI layers, protocols, and network configuration.", Link: basePdfURL + "IT_Sem4_CNND.pdf"},
		{Id: "i4-3", Category: entity.KnowledgeCategoryTimetable, Title: "IT Sem 4: Operating System", Content: "Core OS concepts with focus on system integration.", Link: basePdfURL + "IT_Sem4_OS.pdf"},
		{Id: "i4-4", Category: entity.KnowledgeCategoryTimetable, Title: "IT Sem 4: Automata Theory", Content: "Computation models, Grammars, and Language theory.", Link: basePdfURL + "IT_Sem4_AT.pdf"},
		{Id: "i4-5", Category: entity.KnowledgeCategoryTimetable, Title: "IT Sem 4: Computer Org & Architecture", Content: "Hardware organization and assembly logic.", Link: basePdfURL + "IT_Sem4_COA.pdf"},

		// Electronics & Telecommunication, Sem 4
		{Id: "e4-1", Category: entity.KnowledgeCategoryTimetable, Title: "EXTC Sem 4: Microcontrollers", Content: "8051 and ARM architectures for embedded systems.", Link: basePdfURL + "EXTC_Sem4_Micro.pdf"},
		{Id: "e4-2", Category: entity.KnowledgeCategoryTimetable, Title: "EXTC Sem 4: Linear Integrated Circuits", Content: "Op-amp applications and circuit design.", Link: basePdfURL + "EXTC_Sem4_LIC.pdf"},
		{Id: "e4-3", Category: entity.KnowledgeCategoryTimetable, Title: "EXTC Sem 4: Signals & Systems", Content: "Continuous and Discrete time analysis.", Link: basePdfURL + "EXTC_Sem4_SS.pdf"},

		// Policies
		{Id: "p1", Category: entity.KnowledgeCategoryPolicy, Title: "Hostel Gate Policy", Content: "All engineering students must return to the hostel by 10:00 PM."},
		{Id: "p2", Category: entity.KnowledgeCategoryPolicy, Title: "Attendance Requirement", Content: "Minimum 75% attendance is mandatory in each subject."},
	}
}
