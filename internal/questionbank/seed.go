package questionbank

// seedQuestions is the built-in football bank: four categories with
// 4 easy, 4 medium and 5 hard questions each.
var seedQuestions = []Question{
	// Basic rules.
	{
		ID: "br-e1", Category: CategoryBasicRules, Difficulty: DifficultyEasy,
		Text:        "How many players does each team have on the pitch at kick-off?",
		Options:     []string{"9", "10", "11", "12"},
		Correct:     2,
		Explanation: "Each side starts with 11 players, one of whom is the goalkeeper.",
		Points:      10,
		Concepts:    []string{"team-size"},
	},
	{
		ID: "br-e2", Category: CategoryBasicRules, Difficulty: DifficultyEasy,
		Text:        "How long is a standard professional match, not counting stoppage time?",
		Options:     []string{"60 minutes", "90 minutes", "80 minutes", "120 minutes"},
		Correct:     1,
		Explanation: "Two halves of 45 minutes make 90 minutes of regular play.",
		Points:      10,
		Concepts:    []string{"match-length"},
	},
	{
		ID: "br-e3", Category: CategoryBasicRules, Difficulty: DifficultyEasy,
		Text:        "Which player may handle the ball inside their own penalty area?",
		Options:     []string{"The captain", "Any defender", "The goalkeeper", "Nobody"},
		Correct:     2,
		Explanation: "Only the goalkeeper may use their hands, and only inside their own penalty area.",
		Points:      10,
		Concepts:    []string{"goalkeeper", "handball"},
	},
	{
		ID: "br-e4", Category: CategoryBasicRules, Difficulty: DifficultyEasy,
		Text:        "What does a red card mean?",
		Options:     []string{"The player is sent off", "A friendly warning", "A substitution", "A penalty kick"},
		Correct:     0,
		Explanation: "A red card sends the player off and the team continues with one fewer player.",
		Points:      10,
		Concepts:    []string{"cards"},
	},
	{
		ID: "br-m1", Category: CategoryBasicRules, Difficulty: DifficultyMedium,
		Text:        "How is play restarted when the ball fully crosses the touchline?",
		Options:     []string{"Goal kick", "Corner kick", "Free kick", "Throw-in"},
		Correct:     3,
		Explanation: "The team that did not touch the ball last takes a throw-in from where it went out.",
		Points:      15,
		Concepts:    []string{"throw-in", "restarts"},
	},
	{
		ID: "br-m2", Category: CategoryBasicRules, Difficulty: DifficultyMedium,
		Text:        "A player cannot be offside when receiving the ball directly from which restart?",
		Options:     []string{"Indirect free kick", "Throw-in", "Direct free kick", "Kick-off"},
		Correct:     1,
		Explanation: "There is no offside offence from a throw-in, a goal kick or a corner kick.",
		Points:      15,
		Concepts:    []string{"offside", "throw-in"},
	},
	{
		ID: "br-m3", Category: CategoryBasicRules, Difficulty: DifficultyMedium,
		Text:        "How many yellow cards in one match lead to a player being sent off?",
		Options:     []string{"1", "3", "2", "4"},
		Correct:     2,
		Explanation: "A second caution in the same match becomes a red card.",
		Points:      15,
		Concepts:    []string{"cards"},
	},
	{
		ID: "br-m4", Category: CategoryBasicRules, Difficulty: DifficultyMedium,
		Text:        "From what distance is a penalty kick taken?",
		Options:     []string{"11 metres (12 yards)", "9.15 metres (10 yards)", "16.5 metres (18 yards)", "5.5 metres (6 yards)"},
		Correct:     0,
		Explanation: "The penalty mark is 11 metres from the goal line.",
		Points:      15,
		Concepts:    []string{"penalty-kick"},
	},
	{
		ID: "br-h1", Category: CategoryBasicRules, Difficulty: DifficultyHard,
		Text:        "Can a goal be scored directly from a throw-in?",
		Options:     []string{"Yes, into either goal", "Only into the opponents' goal", "Only in extra time", "No"},
		Correct:     3,
		Explanation: "A goal cannot be scored directly from a throw-in; another player must touch the ball first.",
		Points:      20,
		Concepts:    []string{"throw-in", "restarts"},
	},
	{
		ID: "br-h2", Category: CategoryBasicRules, Difficulty: DifficultyHard,
		Text:        "What is the minimum number of players a team needs on the field for a match to continue?",
		Options:     []string{"5", "6", "7", "8"},
		Correct:     2,
		Explanation: "The Laws of the Game require at least seven players per team.",
		Points:      20,
		Concepts:    []string{"team-size"},
	},
	{
		ID: "br-h3", Category: CategoryBasicRules, Difficulty: DifficultyHard,
		Text:        "A defender deliberately kicks the ball back to their goalkeeper. What may the keeper not do?",
		Options:     []string{"Kick it", "Pick it up with their hands", "Head it", "Control it on their chest"},
		Correct:     1,
		Explanation: "Handling a deliberate back-pass kick gives the opponents an indirect free kick.",
		Points:      20,
		Concepts:    []string{"back-pass", "goalkeeper"},
	},
	{
		ID: "br-h4", Category: CategoryBasicRules, Difficulty: DifficultyHard,
		Text:        "A defender commits a direct free kick foul inside their own penalty area. What is awarded?",
		Options:     []string{"Indirect free kick", "Corner kick", "Penalty kick", "Drop ball"},
		Correct:     2,
		Explanation: "Direct free kick offences by defenders inside their own penalty area are punished with a penalty.",
		Points:      20,
		Concepts:    []string{"penalty-kick", "fouls"},
	},
	{
		ID: "br-h5", Category: CategoryBasicRules, Difficulty: DifficultyHard,
		Text:        "How far must opponents stand from the ball at a free kick?",
		Options:     []string{"5 metres", "9.15 metres (10 yards)", "11 metres", "16.5 metres"},
		Correct:     1,
		Explanation: "Opponents must be at least 9.15 metres away until the ball is in play.",
		Points:      20,
		Concepts:    []string{"free-kick"},
	},

	// Positions.
	{
		ID: "po-e1", Category: CategoryPositions, Difficulty: DifficultyEasy,
		Text:        "Which position's main job is to stop the ball going into the net?",
		Options:     []string{"Striker", "Winger", "Midfielder", "Goalkeeper"},
		Correct:     3,
		Explanation: "The goalkeeper guards the goal and is the last line of defence.",
		Points:      10,
		Concepts:    []string{"goalkeeper"},
	},
	{
		ID: "po-e2", Category: CategoryPositions, Difficulty: DifficultyEasy,
		Text:        "Which player usually plays closest to the opponents' goal?",
		Options:     []string{"Centre-back", "Striker", "Full-back", "Goalkeeper"},
		Correct:     1,
		Explanation: "Strikers lead the line and are usually the team's main goal threat.",
		Points:      10,
		Concepts:    []string{"striker"},
	},
	{
		ID: "po-e3", Category: CategoryPositions, Difficulty: DifficultyEasy,
		Text:        "What do defenders mainly try to do?",
		Options:     []string{"Stop the other team from attacking", "Score most of the goals", "Take every throw-in", "Help the referee"},
		Correct:     0,
		Explanation: "Defenders protect their goal by blocking, tackling and marking attackers.",
		Points:      10,
		Concepts:    []string{"defending"},
	},
	{
		ID: "po-e4", Category: CategoryPositions, Difficulty: DifficultyEasy,
		Text:        "Where do midfielders mostly play?",
		Options:     []string{"Behind the goalkeeper", "Only along the touchline", "Between the defence and the attack", "Inside the goal"},
		Correct:     2,
		Explanation: "Midfielders link defence and attack in the middle third of the pitch.",
		Points:      10,
		Concepts:    []string{"midfield"},
	},
	{
		ID: "po-m1", Category: CategoryPositions, Difficulty: DifficultyMedium,
		Text:        "Which position plays wide and supplies crosses from the flanks?",
		Options:     []string{"Sweeper", "Winger", "Centre-back", "Goalkeeper"},
		Correct:     1,
		Explanation: "Wingers stretch play along the sides and deliver crosses into the box.",
		Points:      15,
		Concepts:    []string{"winger", "crossing"},
	},
	{
		ID: "po-m2", Category: CategoryPositions, Difficulty: DifficultyMedium,
		Text:        "A wide defender who constantly joins the attack down the flank is often called a...",
		Options:     []string{"Libero", "False nine", "Wing-back", "Anchor"},
		Correct:     2,
		Explanation: "Wing-backs cover the whole flank, defending and attacking.",
		Points:      15,
		Concepts:    []string{"wing-back", "defending"},
	},
	{
		ID: "po-m3", Category: CategoryPositions, Difficulty: DifficultyMedium,
		Text:        "What does a defensive midfielder usually do?",
		Options:     []string{"Takes every penalty", "Protects the back line and wins the ball", "Stays up front waiting for passes", "Replaces the goalkeeper"},
		Correct:     1,
		Explanation: "The holding midfielder screens the defence and breaks up attacks.",
		Points:      15,
		Concepts:    []string{"midfield", "defending"},
	},
	{
		ID: "po-m4", Category: CategoryPositions, Difficulty: DifficultyMedium,
		Text:        "Which shirt number is traditionally worn by the starting goalkeeper?",
		Options:     []string{"1", "5", "9", "10"},
		Correct:     0,
		Explanation: "The number 1 shirt has traditionally belonged to the first-choice goalkeeper.",
		Points:      15,
		Concepts:    []string{"goalkeeper"},
	},
	{
		ID: "po-h1", Category: CategoryPositions, Difficulty: DifficultyHard,
		Text:        "What is a \"false nine\"?",
		Options:     []string{"A ninth defender", "A goalkeeper who plays outfield", "A striker who drops deep into midfield to create space", "An unused substitute"},
		Correct:     2,
		Explanation: "A false nine leaves the centre-forward position to pull defenders out and open space.",
		Points:      20,
		Concepts:    []string{"striker", "false-nine"},
	},
	{
		ID: "po-h2", Category: CategoryPositions, Difficulty: DifficultyHard,
		Text:        "What is a sweeper (libero)?",
		Options:     []string{"A defender who plays behind the back line to cover", "A winger who only crosses", "A striker who never defends", "The substitute goalkeeper"},
		Correct:     0,
		Explanation: "The sweeper covers behind the defensive line and cleans up loose balls.",
		Points:      20,
		Concepts:    []string{"sweeper", "defending"},
	},
	{
		ID: "po-h3", Category: CategoryPositions, Difficulty: DifficultyHard,
		Text:        "What is a box-to-box midfielder known for?",
		Options:     []string{"Only taking corners", "Staying in the centre circle", "Marking the goalkeeper", "Covering both penalty areas in attack and defence"},
		Correct:     3,
		Explanation: "Box-to-box midfielders contribute at both ends thanks to their stamina.",
		Points:      20,
		Concepts:    []string{"midfield"},
	},
	{
		ID: "po-h4", Category: CategoryPositions, Difficulty: DifficultyHard,
		Text:        "What is an inverted winger?",
		Options:     []string{"A defender playing on the wrong side", "A winger who cuts inside onto their stronger foot", "A winger who only defends", "A goalkeeper who takes free kicks"},
		Correct:     1,
		Explanation: "Inverted wingers play on the flank opposite their stronger foot so they can cut in and shoot.",
		Points:      20,
		Concepts:    []string{"winger"},
	},
	{
		ID: "po-h5", Category: CategoryPositions, Difficulty: DifficultyHard,
		Text:        "In a back three, what are the two outer centre-backs often asked to do?",
		Options:     []string{"Take all the throw-ins", "Play as extra strikers", "Step out wide to cover the channels", "Stay on the goal line"},
		Correct:     2,
		Explanation: "Outside centre-backs in a back three defend the channels and support the wing-backs.",
		Points:      20,
		Concepts:    []string{"defending", "formations"},
	},

	// Strategy.
	{
		ID: "st-e1", Category: CategoryStrategy, Difficulty: DifficultyEasy,
		Text:        "What does passing mean?",
		Options:     []string{"Shooting at goal", "Moving the ball to a teammate", "Heading the ball away", "Kicking the ball out of play"},
		Correct:     1,
		Explanation: "A pass moves the ball to a teammate and keeps possession.",
		Points:      10,
		Concepts:    []string{"passing"},
	},
	{
		ID: "st-e2", Category: CategoryStrategy, Difficulty: DifficultyEasy,
		Text:        "Why do players warm up before a match?",
		Options:     []string{"To prepare their bodies and lower injury risk", "To tire themselves out", "Because the referee says so", "To waste time"},
		Correct:     0,
		Explanation: "Warming up raises body temperature and prepares muscles for intense play.",
		Points:      10,
		Concepts:    []string{"fitness"},
	},
	{
		ID: "st-e3", Category: CategoryStrategy, Difficulty: DifficultyEasy,
		Text:        "What is a counter-attack?",
		Options:     []string{"A foul on the goalkeeper", "A type of goal kick", "Attacking quickly right after winning the ball", "Wasting time near the corner flag"},
		Correct:     2,
		Explanation: "Counter-attacks exploit the space left while the opponents are still pushed forward.",
		Points:      10,
		Concepts:    []string{"counter-attack"},
	},
	{
		ID: "st-e4", Category: CategoryStrategy, Difficulty: DifficultyEasy,
		Text:        "Why should teammates talk to each other during a game?",
		Options:     []string{"To distract the referee", "To argue about tactics", "It makes no difference", "To organise and warn each other"},
		Correct:     3,
		Explanation: "Calling for the ball and warning of pressure keeps the team organised.",
		Points:      10,
		Concepts:    []string{"communication"},
	},
	{
		ID: "st-m1", Category: CategoryStrategy, Difficulty: DifficultyMedium,
		Text:        "What does the formation 4-4-2 describe?",
		Options:     []string{"4 defenders, 4 midfielders, 2 forwards", "4 forwards, 4 midfielders, 2 defenders", "4 goalkeepers and 6 outfield players", "The score after extra time"},
		Correct:     0,
		Explanation: "Formations list players from defence to attack, not counting the goalkeeper.",
		Points:      15,
		Concepts:    []string{"formations"},
	},
	{
		ID: "st-m2", Category: CategoryStrategy, Difficulty: DifficultyMedium,
		Text:        "What is pressing?",
		Options:     []string{"Passing backwards to the goalkeeper", "Closing down opponents quickly to win the ball back", "Standing still in a line", "Kicking the ball as far as possible"},
		Correct:     1,
		Explanation: "Pressing reduces the opponents' time on the ball and forces mistakes.",
		Points:      15,
		Concepts:    []string{"pressing"},
	},
	{
		ID: "st-m3", Category: CategoryStrategy, Difficulty: DifficultyMedium,
		Text:        "Why do teams switch play from one side of the pitch to the other?",
		Options:     []string{"To waste time", "Because the rules require it", "To move the ball to the less crowded side", "To give the goalkeeper a rest"},
		Correct:     2,
		Explanation: "Switching play attacks the weak side before the defence can shift across.",
		Points:      15,
		Concepts:    []string{"passing", "width"},
	},
	{
		ID: "st-m4", Category: CategoryStrategy, Difficulty: DifficultyMedium,
		Text:        "What is the offside trap?",
		Options:     []string{"Defenders step up together to leave attackers offside", "A net behind the goal", "A foul on the referee", "A time-wasting trick at corners"},
		Correct:     0,
		Explanation: "A coordinated step forward by the back line can catch attackers in an offside position.",
		Points:      15,
		Concepts:    []string{"offside", "defending"},
	},
	{
		ID: "st-h1", Category: CategoryStrategy, Difficulty: DifficultyHard,
		Text:        "What is gegenpressing?",
		Options:     []string{"Defending deep in your own half", "Pressing immediately after losing the ball to win it back", "Passing only backwards", "Man-marking the goalkeeper"},
		Correct:     1,
		Explanation: "The counter-press attacks opponents in the moments after they win the ball, when they are disorganised.",
		Points:      20,
		Concepts:    []string{"pressing"},
	},
	{
		ID: "st-h2", Category: CategoryStrategy, Difficulty: DifficultyHard,
		Text:        "Tiki-taka is a style of play based on...",
		Options:     []string{"Long balls to a tall striker", "Defending with ten players", "Short passing and movement to keep possession", "Shooting from distance"},
		Correct:     2,
		Explanation: "Tiki-taka circulates the ball quickly with short passes to control the game.",
		Points:      20,
		Concepts:    []string{"passing", "possession"},
	},
	{
		ID: "st-h3", Category: CategoryStrategy, Difficulty: DifficultyHard,
		Text:        "What does it mean to overload a zone?",
		Options:     []string{"To kick the ball too hard", "To put more players in an area than the opponents", "To substitute several players at once", "To play with twelve players"},
		Correct:     1,
		Explanation: "Numerical superiority in one area creates free players and passing options.",
		Points:      20,
		Concepts:    []string{"overload", "formations"},
	},
	{
		ID: "st-h4", Category: CategoryStrategy, Difficulty: DifficultyHard,
		Text:        "What does a team do when it sits in a low block?",
		Options:     []string{"Presses high up the pitch", "Plays with no defenders", "Attacks with every player", "Defends deep and compact near its own goal"},
		Correct:     3,
		Explanation: "A low block protects the space in front of goal and invites the opponents forward.",
		Points:      20,
		Concepts:    []string{"defending", "formations"},
	},
	{
		ID: "st-h5", Category: CategoryStrategy, Difficulty: DifficultyHard,
		Text:        "What is the half-space?",
		Options:     []string{"The vertical channel between the wing and the centre", "The centre circle", "Half of the penalty area", "The area behind the goal"},
		Correct:     0,
		Explanation: "Half-spaces sit between the flank and the middle, where defenders find it hard to decide who marks.",
		Points:      20,
		Concepts:    []string{"width", "overload"},
	},

	// History.
	{
		ID: "hi-e1", Category: CategoryHistory, Difficulty: DifficultyEasy,
		Text:        "Which country has won the most men's FIFA World Cups?",
		Options:     []string{"Germany", "Italy", "Argentina", "Brazil"},
		Correct:     3,
		Explanation: "Brazil have won the World Cup five times.",
		Points:      10,
		Concepts:    []string{"world-cup"},
	},
	{
		ID: "hi-e2", Category: CategoryHistory, Difficulty: DifficultyEasy,
		Text:        "How often is the men's FIFA World Cup held?",
		Options:     []string{"Every year", "Every 2 years", "Every 4 years", "Every 5 years"},
		Correct:     2,
		Explanation: "The World Cup takes place every four years.",
		Points:      10,
		Concepts:    []string{"world-cup"},
	},
	{
		ID: "hi-e3", Category: CategoryHistory, Difficulty: DifficultyEasy,
		Text:        "Which country hosted the first FIFA World Cup in 1930?",
		Options:     []string{"Uruguay", "Brazil", "Italy", "England"},
		Correct:     0,
		Explanation: "Uruguay hosted and won the first World Cup.",
		Points:      10,
		Concepts:    []string{"world-cup"},
	},
	{
		ID: "hi-e4", Category: CategoryHistory, Difficulty: DifficultyEasy,
		Text:        "Which country is seen as the birthplace of modern football's written rules?",
		Options:     []string{"Spain", "England", "Brazil", "Italy"},
		Correct:     1,
		Explanation: "The Football Association wrote the first common rules in England.",
		Points:      10,
		Concepts:    []string{"origins"},
	},
	{
		ID: "hi-m1", Category: CategoryHistory, Difficulty: DifficultyMedium,
		Text:        "Who won the 2022 FIFA World Cup?",
		Options:     []string{"France", "Croatia", "Argentina", "Brazil"},
		Correct:     2,
		Explanation: "Argentina beat France on penalties in the final in Qatar.",
		Points:      15,
		Concepts:    []string{"world-cup"},
	},
	{
		ID: "hi-m2", Category: CategoryHistory, Difficulty: DifficultyMedium,
		Text:        "Which player scored the famous \"Hand of God\" goal in 1986?",
		Options:     []string{"Diego Maradona", "Pelé", "Zinedine Zidane", "Johan Cruyff"},
		Correct:     0,
		Explanation: "Maradona scored it against England in the 1986 quarter-final.",
		Points:      15,
		Concepts:    []string{"legends", "world-cup"},
	},
	{
		ID: "hi-m3", Category: CategoryHistory, Difficulty: DifficultyMedium,
		Text:        "Which club has won the most European Cup and Champions League titles?",
		Options:     []string{"AC Milan", "Liverpool", "Bayern Munich", "Real Madrid"},
		Correct:     3,
		Explanation: "Real Madrid hold the record for European Cup wins.",
		Points:      15,
		Concepts:    []string{"club-football"},
	},
	{
		ID: "hi-m4", Category: CategoryHistory, Difficulty: DifficultyMedium,
		Text:        "In which year was the first FIFA Women's World Cup held?",
		Options:     []string{"1971", "1991", "1999", "2003"},
		Correct:     1,
		Explanation: "The first Women's World Cup was held in China in 1991.",
		Points:      15,
		Concepts:    []string{"womens-football", "world-cup"},
	},
	{
		ID: "hi-h1", Category: CategoryHistory, Difficulty: DifficultyHard,
		Text:        "Which nation surprised everyone by winning Euro 2004?",
		Options:     []string{"Portugal", "Czech Republic", "Netherlands", "Greece"},
		Correct:     3,
		Explanation: "Greece beat hosts Portugal 1-0 in the final.",
		Points:      20,
		Concepts:    []string{"euros"},
	},
	{
		ID: "hi-h2", Category: CategoryHistory, Difficulty: DifficultyHard,
		Text:        "Total Football is most associated with which national team of the 1970s?",
		Options:     []string{"England", "Netherlands", "Italy", "Spain"},
		Correct:     1,
		Explanation: "The Dutch side led by Johan Cruyff made Total Football famous.",
		Points:      20,
		Concepts:    []string{"legends", "formations"},
	},
	{
		ID: "hi-h3", Category: CategoryHistory, Difficulty: DifficultyHard,
		Text:        "Who scored a hat-trick in the 1966 World Cup final?",
		Options:     []string{"Bobby Charlton", "Eusébio", "Geoff Hurst", "Gerd Müller"},
		Correct:     2,
		Explanation: "Geoff Hurst scored three times as England beat West Germany 4-2.",
		Points:      20,
		Concepts:    []string{"legends", "world-cup"},
	},
	{
		ID: "hi-h4", Category: CategoryHistory, Difficulty: DifficultyHard,
		Text:        "In which year was England's Football Association founded?",
		Options:     []string{"1863", "1848", "1888", "1904"},
		Correct:     0,
		Explanation: "The FA was founded in 1863 at the Freemasons' Tavern in London.",
		Points:      20,
		Concepts:    []string{"origins"},
	},
	{
		ID: "hi-h5", Category: CategoryHistory, Difficulty: DifficultyHard,
		Text:        "Which country won its first World Cup in 2010?",
		Options:     []string{"Netherlands", "Spain", "Germany", "Uruguay"},
		Correct:     1,
		Explanation: "Spain beat the Netherlands 1-0 after extra time in Johannesburg.",
		Points:      20,
		Concepts:    []string{"world-cup"},
	},
}
