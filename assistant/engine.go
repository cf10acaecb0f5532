package assistant

import (
	"math/rand/v2"
	"strings"
)

// Category names a pool of canned replies.
type Category string

const (
	Tips       Category = "tips"
	Break      Category = "break"
	Motivation Category = "motivation"
	Resources  Category = "resources"
)

var pools = map[Category][]string{
	Tips: {
		"Take a 5-minute break every 25 minutes (Pomodoro Technique) 🍅",
		"Keep a clean workspace to maintain focus 🧹",
		"Use the 2-minute rule: if it takes less than 2 minutes, do it now ⏰",
		"Prioritize your most important tasks in the morning 🌅",
		"Turn off notifications during focused work sessions 🔕",
	},
	Break: {
		"Time for a break! Try some quick stretches 🧘‍♂️",
		"Step away from your screen and look at something far away 👀",
		"Take a short walk or do some light exercise 🚶‍♂️",
		"Drink some water and have a healthy snack 💧",
		"Do some deep breathing exercises to refresh your mind 🌬️",
	},
	Motivation: {
		"You're doing great! Keep up the excellent work! 💪",
		"Every small step counts towards your bigger goals 🎯",
		"Progress is progress, no matter how small 📈",
		"You've got this! Stay focused and keep pushing forward 🚀",
		"Remember why you started - you're closer than you think! ✨",
	},
	Resources: {
		"Check out the JavaScript resources - they're perfect for building strong foundations! 🏗️",
		"React is a great next step if you're comfortable with JavaScript basics ⚛️",
		"Consider practicing with small projects to reinforce your learning 🛠️",
		"Join developer communities online for support and networking 👥",
		"Don't forget to build a portfolio as you learn! 📁",
	},
}

var fallbacks = []string{
	"That's interesting! Can you tell me more about what you're working on? 🤔",
	"I'm here to help with productivity tips, break suggestions, and learning resources. What would you like to know more about? 💡",
	"Let me help you with that! Try asking me for specific tips, break ideas, or motivation. What's your current challenge? 🚀",
	"I'd love to help! You can ask me about productivity tips, learning resources, or time management strategies. What interests you most? ✨",
}

// Rule maps keywords to replies. A rule matches when the lower-cased
// message contains any of its keywords.
type Rule struct {
	Keywords []string
	Replies  []string
}

func (r Rule) matches(lower string) bool {
	for _, k := range r.Keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}

	return false
}

func reply(s string) []string {
	return []string{s}
}

// rules is evaluated in order and the first match wins, so broad keywords
// such as "hi" shadow every rule after them.
var rules = []Rule{
	{[]string{"tip", "advice"}, pools[Tips]},
	{[]string{"break", "rest"}, pools[Break]},
	{[]string{"motivat", "encourage"}, pools[Motivation]},
	{[]string{"learn", "resource", "study"}, pools[Resources]},
	{[]string{"hello", "hi"}, reply(
		"Hello! How can I help you be more productive today? 😊",
	)},
	{[]string{"time", "schedule"}, reply(
		"Time management is key! Try time-blocking your tasks and using the Pomodoro Technique. What specific time management challenge are you facing? ⏰",
	)},
	{[]string{"focus", "concentration"}, reply(
		"To improve focus, try eliminating distractions, using website blockers, and working in focused 25-minute sessions. What's making it hard to concentrate? 🎯",
	)},
	{[]string{"responsive", "mobile view"}, reply(
		"Making your site responsive? Try using CSS Flexbox or Grid with media queries. Want help with a specific layout? 📱",
	)},
	{[]string{"github", "version control"}, reply(
		"Using GitHub is a great way to track changes and collaborate. Need help with commits, branches, or pull requests? 🛠",
	)},
	{[]string{"hosting", "deploy"}, reply(
		"You can host your site on Netlify, Vercel, or GitHub Pages! Need help setting up a deployment? 🌐",
	)},
	{[]string{"database", "sql"}, reply(
		"Databases store your data. SQL is great for relational data, MongoDB for flexible schemas. What are you trying to build? 🗃",
	)},
	{[]string{"anxious", "worried"}, reply(
		"Take a deep breath. Anxiety often comes from trying to control the future. Focus on what you can do right now, one step at a time 🌸",
	)},
	{[]string{"low", "not okay"}, reply(
		"It's okay to not feel okay. You're not alone, and you're not a burden. Want to talk about what's on your mind? 💬",
	)},
	{[]string{"confidence", "self doubt"}, reply(
		"Imposter syndrome hits even the best. You're learning, growing, and doing more than you give yourself credit for. Keep going 💪",
	)},
	{[]string{"stuck", "can’t think", "can't think"}, reply(
		"Feeling stuck is part of the creative process. Step away for a bit, clarity often comes after a short break or change of scene 🌀",
	)},
	{[]string{"portfolio", "resume site"}, reply(
		"Great idea! A portfolio helps show your skills. Want tips on design, layout, or what projects to include? 🎨",
	)},
	{[]string{"css animation", "transitions"}, reply(
		"CSS animations can really make your UI pop! Need help with keyframes, transitions, or effects? ✨",
	)},
	{[]string{"exhausted", "drained"}, reply(
		"You've been giving a lot, and it's okay to feel drained. Rest isn't a luxury, it's part of being productive. Step away, recharge, come back stronger 🌿",
	)},
	{[]string{"burnout", "burned out"}, reply(
		"Burnout means you've been pushing too hard for too long. Your health matters. Take a break, breathe, even a walk outside can help 🌤",
	)},
	{[]string{"fatigue", "mentally tired"}, reply(
		"Mental fatigue is real, especially when you've been deep in code. Try a power nap, hydrate, or do something fun for 15 minutes 🧠✨",
	)},
	{[]string{"demotivated", "no energy"}, reply(
		"Even the most passionate devs feel unmotivated sometimes. It's okay. Progress isn't always fast, but you're still moving forward 💫",
	)},
	{[]string{"can’t code", "can't code", "mind blank"}, reply(
		"Some days the code just doesn't flow, and that's normal. Don't force it. You're still a good developer, even on low-energy days ⚙🖤",
	)},
	{[]string{"too much work", "overworked"}, reply(
		"You're carrying a lot, and that's no small thing. Prioritize, delegate if you can, and don't be afraid to say 'no' sometimes. Your health comes first 🛑💡",
	)},
	{[]string{"nothing working", "frustrated"}, reply(
		"Ugh, those days when every bug feels personal. Step back, take a breath, it'll click soon. You've solved tough problems before, and you will again 🔍💪",
	)},
	{[]string{"late nights", "no sleep"}, reply(
		"Late night coding sprints are heroic, but not sustainable. Sleep is your brain's debugger. Prioritize rest, and tomorrow you'll code better 😴🧘",
	)},
	{[]string{"why am i doing this", "pointless"}, reply(
		"It's easy to forget your 'why' when you're tired. But remember, your work matters, and so do you. You're building something amazing, even if it's hard 💖",
	)},
	{[]string{"need a break", "step away"}, reply(
		"Then take one, guilt-free. Breaks make better builders. Your code and your mind will thank you for it 🍃🔧",
	)},
	{[]string{"progress", "track"}, reply(
		"Tracking progress is motivating! Use the progress feed to log your achievements. Small wins add up to big successes! 📊",
	)},
}

// Engine answers messages from a fixed rule table without any network
// access.
type Engine struct {
	intN  func(n int) int
	rules []Rule
}

// NewEngine returns an engine using src for its random picks, or the
// global source if src is nil.
func NewEngine(src rand.Source) *Engine {
	e := &Engine{
		rules: rules,
		intN:  rand.IntN,
	}

	if src != nil {
		e.intN = rand.New(src).IntN
	}

	return e
}

// Resolve returns the reply for message. It always returns a non-empty
// string.
func (e *Engine) Resolve(message string) string {
	lower := strings.ToLower(message)

	for _, r := range e.rules {
		if r.matches(lower) {
			return e.pick(r.Replies)
		}
	}

	return e.pick(fallbacks)
}

// Pick returns a random reply from the category's pool.
func (e *Engine) Pick(c Category) string {
	return e.pick(pools[c])
}

func (e *Engine) pick(replies []string) string {
	return replies[e.intN(len(replies))]
}

// Pool returns a copy of the replies in a category.
func Pool(c Category) []string {
	return append([]string(nil), pools[c]...)
}

// Fallbacks returns a copy of the replies used when no rule matches.
func Fallbacks() []string {
	return append([]string(nil), fallbacks...)
}

// Rules returns the rule table in evaluation order.
func Rules() []Rule {
	return append([]Rule(nil), rules...)
}
