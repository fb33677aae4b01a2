package dto

type EffectOutput struct {
	Kind   string
	Amount int
}

type MissionOutput struct {
	ID      string
	Title   string
	Reward  string
	Effects []EffectOutput
}

type PenaltyOutput struct {
	ID              string
	Name            string
	Level           int
	DurationSeconds int
	Desc            string
}

type QuestOutput struct {
	ID    string
	Kind  string
	Title string
	Desc  string
}

type ShopItemOutput struct {
	ID          string
	Title       string
	CostMinutes int
	Desc        string
}

type RulesOutput struct {
	Title string
	Body  string
}
