// Package i18n holds the static interface string tables. Lookup is by
// model.Language and falls back to English for anything unknown.
package i18n

import "github.com/dowk233/steelMaster/internal/model"

type Strings struct {
	NavToday   string
	NavGrid    string
	NavStats   string
	TodayTitle string
	TodayTasks string
	NoTasks    string
	Habits     string
	HabitsSub  string
	NoHabits   string
	GoalLabel  string

	StatsYesterday   string
	StatsPerformance string
	StatsAccuracy    string
	StatsCleared     string
	StatsPerfect     string
	StatsIncomplete  string
	StatsMomentum    string
	StatsYearly      string
	StatsJourney     string
	StatsStreak      string
	StatsVictories   string
	StatsDays        string

	AITitle     string
	AIAnalyzing string
	AIRefresh   string

	StatusSaved string
}

var tables = map[model.Language]Strings{
	model.LanguageEN: {
		NavToday:   "Today",
		NavGrid:    "Year Grid",
		NavStats:   "Stats",
		TodayTitle: "Daily Log",
		TodayTasks: "tasks",
		NoTasks:    "No tasks logged yet",
		Habits:     "Habits",
		HabitsSub:  "Daily non-negotiables",
		NoHabits:   "No habits yet",
		GoalLabel:  "Goal",

		StatsYesterday:   "Yesterday",
		StatsPerformance: "Performance",
		StatsAccuracy:    "accuracy",
		StatsCleared:     "cleared",
		StatsPerfect:     "Perfect",
		StatsIncomplete:  "Incomplete",
		StatsMomentum:    "7-day momentum",
		StatsYearly:      "Yearly Progress",
		StatsJourney:     "of the journey",
		StatsStreak:      "Longest streak",
		StatsVictories:   "Victories",
		StatsDays:        "days",

		AITitle:     "AI Insight",
		AIAnalyzing: "Analyzing your progress...",
		AIRefresh:   "Refresh",

		StatusSaved: "saved",
	},
	model.LanguageENUK: {
		NavToday:   "Today",
		NavGrid:    "Year Grid",
		NavStats:   "Statistics",
		TodayTitle: "Daily Log",
		TodayTasks: "tasks",
		NoTasks:    "No tasks logged yet",
		Habits:     "Habits",
		HabitsSub:  "Daily non-negotiables",
		NoHabits:   "No habits yet",
		GoalLabel:  "Goal",

		StatsYesterday:   "Yesterday",
		StatsPerformance: "Performance",
		StatsAccuracy:    "accuracy",
		StatsCleared:     "cleared",
		StatsPerfect:     "Spot on",
		StatsIncomplete:  "Incomplete",
		StatsMomentum:    "7-day momentum",
		StatsYearly:      "Yearly Progress",
		StatsJourney:     "of the journey",
		StatsStreak:      "Longest streak",
		StatsVictories:   "Victories",
		StatsDays:        "days",

		AITitle:     "AI Insight",
		AIAnalyzing: "Analysing your progress...",
		AIRefresh:   "Refresh",

		StatusSaved: "saved",
	},
	model.LanguageJP: {
		NavToday:   "今日",
		NavGrid:    "年間グリッド",
		NavStats:   "統計",
		TodayTitle: "今日の記録",
		TodayTasks: "タスク",
		NoTasks:    "タスクはまだありません",
		Habits:     "習慣",
		HabitsSub:  "毎日の約束",
		NoHabits:   "習慣はまだありません",
		GoalLabel:  "目標",

		StatsYesterday:   "昨日",
		StatsPerformance: "パフォーマンス",
		StatsAccuracy:    "達成率",
		StatsCleared:     "完了",
		StatsPerfect:     "完璧",
		StatsIncomplete:  "未完了",
		StatsMomentum:    "7日間の勢い",
		StatsYearly:      "年間進捗",
		StatsJourney:     "の道のり",
		StatsStreak:      "最長連続記録",
		StatsVictories:   "達成日",
		StatsDays:        "日",

		AITitle:     "AIインサイト",
		AIAnalyzing: "進捗を分析中...",
		AIRefresh:   "更新",

		StatusSaved: "保存しました",
	},
	model.LanguageZH: {
		NavToday:   "今天",
		NavGrid:    "年度网格",
		NavStats:   "统计",
		TodayTitle: "每日记录",
		TodayTasks: "任务",
		NoTasks:    "还没有任务",
		Habits:     "习惯",
		HabitsSub:  "每日必做",
		NoHabits:   "还没有习惯",
		GoalLabel:  "目标",

		StatsYesterday:   "昨天",
		StatsPerformance: "表现",
		StatsAccuracy:    "完成率",
		StatsCleared:     "已完成",
		StatsPerfect:     "完美",
		StatsIncomplete:  "未完成",
		StatsMomentum:    "7天势头",
		StatsYearly:      "年度进度",
		StatsJourney:     "的旅程",
		StatsStreak:      "最长连续",
		StatsVictories:   "达成日",
		StatsDays:        "天",

		AITitle:     "AI洞察",
		AIAnalyzing: "正在分析你的进度...",
		AIRefresh:   "刷新",

		StatusSaved: "已保存",
	},
}

// For returns the string table for lang, falling back to English.
func For(lang model.Language) Strings {
	if t, ok := tables[lang]; ok {
		return t
	}
	return tables[model.LanguageEN]
}
