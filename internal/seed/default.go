package seed

import "github.com/idilsaglam/swimlane/internal/model"

// Default returns the built-in client list.
func Default() []model.SeedRow {
	return []model.SeedRow{
		{ID: "1", Name: "Stark, White and Abbott", Description: "Cloned Optimal Architecture", Lane: "in-progress"},
		{ID: "2", Name: "Wiza LLC", Description: "Exclusive Bandwidth-Monitored Implementation", Lane: "complete"},
		{ID: "3", Name: "Nolan LLC", Description: "Vision-Oriented 4Thgeneration Graphicaluserinterface", Lane: "backlog"},
		{ID: "4", Name: "Thompson PLC", Description: "Streamlined Regional Knowledgeuser", Lane: "in-progress"},
		{ID: "5", Name: "Walker-Williamson", Description: "Team-Oriented 6Thgeneration Matrix", Lane: "in-progress"},
		{ID: "6", Name: "Boehm and Sons", Description: "Automated Systematic Paradigm", Lane: "backlog"},
		{ID: "7", Name: "Runolfsson, Hegmann and Block", Description: "Integrated Transitional Strategy", Lane: "backlog"},
		{ID: "8", Name: "Schumm-Labadie", Description: "Operative Heuristic Challenge", Lane: "backlog"},
		{ID: "9", Name: "Kohler Group", Description: "Re-Contextualized Multi-Tasking Attitude", Lane: "backlog"},
		{ID: "10", Name: "Romaguera Inc", Description: "Managed Foreground Toolset", Lane: "backlog"},
		{ID: "11", Name: "Reilly-King", Description: "Future-Proofed Interactive Toolset", Lane: "complete"},
		{ID: "12", Name: "Emard, Champlin and Runolfsdottir", Description: "Devolved Needs-Based Capability", Lane: "backlog"},
		{ID: "13", Name: "Fritsch, Cronin and Wolff", Description: "Open-Source 3Rdgeneration Website", Lane: "complete"},
		{ID: "14", Name: "Borer LLC", Description: "Profit-Focused Incremental Orchestration", Lane: "backlog"},
		{ID: "15", Name: "Emmerich-Ankunding", Description: "User-Centric Stable Extranet", Lane: "in-progress"},
		{ID: "16", Name: "Willms-Abbott", Description: "Progressive Bandwidth-Monitored Access", Lane: "in-progress"},
		{ID: "17", Name: "Brekke PLC", Description: "Intuitive User-Facing Customerloyalty", Lane: "complete"},
		{ID: "18", Name: "Bins, Toy and Klocko", Description: "Integrated Assymetric Software", Lane: "backlog"},
		{ID: "19", Name: "Hodkiewicz-Hayes", Description: "Programmable Systematic Securedline", Lane: "backlog"},
		{ID: "20", Name: "Murphy, Lang and Ferry", Description: "Organized Explicit Access", Lane: "backlog"},
	}
}
