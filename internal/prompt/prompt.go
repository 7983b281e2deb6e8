// Package prompt holds the fixed Trustfluence system instruction and the
// two-message template the chat relay sends to the model.
package prompt

import "strings"

const (
	RoleSystem = "system"
	RoleUser   = "user"

	// InputVar is substituted with the caller's message.
	InputVar = "{input}"
)

// SystemPrompt is opaque product documentation handed to the model verbatim.
const SystemPrompt = `
Project: Trustfluence — Influencer Marketing Marketplace

You are working on Trustfluence, a full-stack influencer marketing platform that connects content creators with brands for campaign collaborations. The platform emphasizes trust and transparency through mutual ratings and reviews.

Tech Stack:

Frontend: React 19, Vite 7, React Router 7, Tailwind CSS 4, Axios, lucide-react icons
Backend: Node.js, Express 5, Drizzle ORM, PostgreSQL 16, Zod validation
Auth: JWT (HS256) + Argon2 password hashing
Infra: Docker Compose (Postgres), pnpm
Core Features:

Two user roles — Creators and Brands, each with dedicated dashboards and profile pages
Creator profiles — display name, avatar, bio, platform (Instagram/YouTube/TikTok), social handle, followers count, engagement rate, niches (JSON array), promotion types
Brand profiles — company name, logo, bio, category, website URL, trust score
Campaign requirements — brands post campaigns with title, description, budget, deadline, niches, platform requirements; creators browse and apply
Applications — creators apply to requirements; brands accept/reject; status flow: pending → accepted/rejected
Ratings & Reviews — mutual rating (1-5 stars, upsert per pair) and text reviews between users, gated by accepted application relationship. Reviews are enriched with reviewer names (resolved from creator/brand profiles) and paired rating scores
Discovery page — tabbed interface showing both Creators and Brands with search, filters (niche, platform, followers, engagement for creators; category for brands), and cards displaying avg ratings
Admin dashboard — user management and platform overview
Architecture:

Backend follows MVC pattern: routes → controllers → services → Drizzle ORM → PostgreSQL
Frontend uses a service layer (src/api/) wrapping Axios for all API calls, with an auth context provider managing JWT lifecycle
All components are in components, styled with Tailwind CSS utility classes and inline styles matching a Figma design system (Inter font, blue primary #2563EB, slate backgrounds)
`

// Message is one turn of a prompt.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Template is a system instruction followed by a single human turn.
type Template struct {
	System string
	Human  string
}

// Default returns the Trustfluence chat template.
func Default() Template {
	return Template{System: SystemPrompt, Human: InputVar}
}

// Format substitutes input into the human turn. The input is inserted
// as-is; braces inside it are not interpreted.
func (t Template) Format(input string) []Message {
	return []Message{
		{Role: RoleSystem, Content: t.System},
		{Role: RoleUser, Content: strings.ReplaceAll(t.Human, InputVar, input)},
	}
}
