package analysis

// valence maps recognized words to their polarity weight, AFINN style:
// -5 (most negative) to +5 (most positive). The table is data, not logic;
// extending it never changes scoring semantics.
var valence = map[string]int{
	"abandon": -2, "abandoned": -2, "abuse": -3, "abusive": -3,
	"accept": 1, "accepted": 1, "accident": -2, "accomplish": 2,
	"accomplished": 2, "ache": -2, "achieve": 2, "achievement": 2,
	"admire": 3, "adopt": 1, "adorable": 3, "adore": 3, "advantage": 2,
	"adventure": 2, "afraid": -2, "aggressive": -2, "agree": 1,
	"agreement": 1, "alarm": -2, "alert": -1, "alive": 1, "alone": -2,
	"amazing": 4, "anger": -3, "angry": -3, "annoy": -2, "annoyed": -2,
	"annoying": -2, "anxiety": -2, "anxious": -2, "apology": -1,
	"appreciate": 2, "appreciated": 2, "approval": 2, "approve": 2,
	"argue": -2, "argument": -2, "arrest": -2, "arrested": -3,
	"ashamed": -2, "attack": -1, "attacked": -1, "attract": 1,
	"attractive": 2, "avoid": -1, "award": 3, "awarded": 3, "awesome": 4,
	"awful": -3, "awkward": -2,
	"bad": -3, "badly": -3, "ban": -2, "banned": -2, "bankrupt": -3,
	"bargain": 2, "battle": -1, "beautiful": 3, "beauty": 3, "benefit": 2,
	"best": 3, "betray": -3, "betrayed": -3, "better": 2, "bitter": -2,
	"blame": -2, "blamed": -2, "bless": 2, "blessing": 3, "block": -1,
	"blocked": -1, "bold": 2, "bomb": -1, "bore": -2, "bored": -2,
	"boring": -3, "boycott": -2, "brave": 2, "breathtaking": 5,
	"bright": 1, "brilliant": 4, "broke": -2, "broken": -1, "brutal": -3,
	"burden": -2,
	"calm": 2, "cancel": -1, "cancelled": -1, "cancer": -1, "capable": 1,
	"care": 2, "careful": 2, "careless": -2, "casualty": -2,
	"celebrate": 3, "celebration": 3, "challenge": -1, "champion": 2,
	"chaos": -2, "chaotic": -2, "charm": 3, "charming": 3, "cheap": -1,
	"cheat": -3, "cheated": -3, "cheer": 2, "cheerful": 2, "cherish": 2,
	"clean": 2, "clever": 2, "collapse": -2, "collapsed": -2,
	"comfort": 2, "comfortable": 2, "complain": -2, "complaint": -2,
	"conflict": -2, "confuse": -2, "confused": -2, "confusing": -2,
	"congratulations": 2, "convince": 1, "convinced": 1, "corrupt": -3,
	"corruption": -3, "courage": 2, "courageous": 2, "crash": -2,
	"crashed": -2, "crazy": -2, "crime": -2, "criminal": -3, "crisis": -3,
	"critic": -2, "criticism": -2, "criticize": -2, "cruel": -3,
	"cry": -1, "crying": -2, "curious": 1, "cut": -1, "cute": 2,
	"damage": -3, "damaged": -3, "danger": -2, "dangerous": -2,
	"dark": -1, "dead": -3, "deadly": -3, "death": -2, "debt": -2,
	"deceive": -3, "defeat": -2, "defeated": -2, "defect": -3,
	"defective": -3, "delay": -1, "delayed": -1, "delight": 3,
	"delighted": 3, "delightful": 3, "demand": -1, "denied": -2,
	"deny": -2, "depressed": -2, "depressing": -2, "desperate": -3,
	"destroy": -3, "destroyed": -3, "destruction": -3, "determined": 2,
	"devastated": -3, "devastating": -2, "die": -3, "died": -3,
	"difficult": -1, "dirty": -2, "disagree": -2, "disappoint": -2,
	"disappointed": -2, "disappointing": -2, "disappointment": -2,
	"disaster": -2, "disastrous": -3, "dishonest": -2, "dislike": -2,
	"dismal": -2, "disorder": -2, "disrupt": -2, "distrust": -3,
	"disturbing": -2, "doom": -2, "doubt": -1, "dream": 1, "dull": -2,
	"dumb": -3, "dying": -2,
	"eager": 2, "easy": 1, "ecstatic": 4, "effective": 2, "efficient": 2,
	"elegant": 2, "embarrass": -2, "embarrassed": -2, "emergency": -2,
	"empty": -1, "encourage": 2, "encouraged": 2, "enemy": -2,
	"energetic": 2, "engage": 1, "enjoy": 2, "enjoyed": 2, "enjoying": 2,
	"enthusiasm": 3, "enthusiastic": 3, "error": -2, "errors": -2,
	"evil": -3, "excellent": 3, "excited": 3, "excitement": 3,
	"exciting": 3, "exhausted": -2, "expand": 1, "expose": -1,
	"extraordinary": 4,
	"fabulous": 4, "fail": -2, "failed": -2, "failing": -2, "failure": -2,
	"fair": 2, "faith": 1, "faithful": 3, "fake": -3, "falling": -1,
	"false": -1, "fame": 1, "famous": 2, "fan": 3, "fantastic": 4,
	"fatal": -3, "fatigue": -2, "favor": 2, "favorite": 2, "fear": -2,
	"fearful": -2, "fearless": 2, "festive": 2, "fight": -1,
	"festival": 2, "fine": 2, "fire": -2, "fired": -2, "flawless": 2,
	"flop": -2,
	"forbid": -2, "forbidden": -2, "forget": -1, "forgive": 1,
	"fortunate": 2, "fraud": -4, "free": 1, "freedom": 2, "fresh": 1,
	"friendly": 2, "frightened": -2, "frustrated": -2, "frustrating": -2,
	"fun": 4, "funny": 4, "furious": -3,
	"gain": 2, "generous": 2, "gentle": 3, "gift": 2, "glad": 3,
	"gloomy": -1, "glorious": 2, "glory": 2, "good": 3, "gorgeous": 3,
	"grace": 1, "graceful": 2, "grand": 3, "grant": 1, "grateful": 3,
	"great": 3, "greed": -3, "greedy": -2, "grief": -2, "grim": -2,
	"growing": 1, "growth": 2, "guilt": -3, "guilty": -3,
	"happiness": 3, "happy": 3, "harm": -2, "harmful": -2, "harsh": -2,
	"hate": -3, "hated": -3, "hateful": -3, "hazard": -3, "heal": 2,
	"healthy": 2, "heartbreaking": -3, "heaven": 2, "hell": -4,
	"help": 2, "helpful": 2, "helpless": -2, "hero": 2, "hesitant": -2,
	"hid": -1, "hide": -1, "honest": 2, "honor": 2, "hope": 2,
	"hopeful": 2, "hopeless": -2, "horrible": -3, "horrific": -3,
	"horror": -3, "hostile": -2, "hug": 2, "humiliated": -3, "humor": 2,
	"hurt": -2, "hurting": -2,
	"ignorant": -2, "ignore": -1, "ignored": -2, "ill": -2, "illegal": -3,
	"illness": -2, "impress": 3, "impressed": 3, "impressive": 3,
	"improve": 2, "improved": 2, "improvement": 2, "inability": -2,
	"incompetent": -2, "increase": 1, "incredible": 4, "infected": -2,
	"inferior": -2, "injured": -2, "injury": -2, "innovate": 1,
	"innovative": 2, "insecure": -2, "inspire": 2, "inspired": 2,
	"inspiring": 3, "insult": -2, "insulted": -2, "intelligent": 2,
	"interest": 1, "interested": 2, "interesting": 2, "invincible": 2,
	"irritate": -3, "irritated": -3,
	"jealous": -2, "jeopardy": -2, "joke": 2, "jolly": 2, "joy": 3,
	"joyful": 3, "justice": 2,
	"keen": 1, "kill": -3, "killed": -3, "kind": 2, "kindness": 2,
	"kiss": 2,
	"lack": -2, "lame": -2, "laugh": 1, "laughing": 2, "lawsuit": -2,
	"lazy": -1, "leak": -1, "lie": -2, "lied": -2, "like": 2,
	"liked": 2, "likes": 2, "limited": -1, "litigation": -1, "lively": 2,
	"lonely": -2, "lose": -3, "losing": -3, "loss": -3, "lost": -3,
	"love": 3, "loved": 3, "lovely": 3, "loves": 3, "loving": 2,
	"loyal": 3, "luck": 3, "lucky": 3,
	"mad": -3, "magnificent": 3, "marvelous": 3, "masterpiece": 4,
	"mature": 2, "meaningful": 2, "menace": -2, "mess": -2, "messy": -2,
	"mighty": 2, "miracle": 4, "miserable": -3, "misery": -2, "miss": -2,
	"missed": -2, "missing": -2, "mistake": -2, "mistaken": -2,
	"misunderstand": -2, "motivate": 1, "motivated": 2, "mourn": -2,
	"murder": -2, "murderer": -2,
	"nasty": -3, "negative": -2, "neglect": -2, "nervous": -2, "nice": 3,
	"noble": 2, "noisy": -1, "notorious": -2, "numb": -1,
	"obliterate": -2, "obnoxious": -3, "obscene": -2, "obsolete": -2,
	"obstacle": -2, "offend": -2, "offended": -2, "offensive": -2,
	"opportunity": 2, "optimism": 2, "optimistic": 2, "outrage": -3,
	"outraged": -3, "outstanding": 5, "overjoyed": 4, "overwhelm": -1,
	"overwhelmed": -1,
	"pain": -2, "painful": -2, "panic": -3, "paradise": 3, "pardon": 2,
	"passion": 1, "passionate": 2, "pathetic": -2, "peace": 2,
	"peaceful": 2, "penalty": -2, "perfect": 3, "perfectly": 3, "peril": -2,
	"pessimistic": -2, "pleasant": 3, "please": 1, "pleased": 3,
	"pleasure": 3, "poison": -2, "poisoned": -2, "pollution": -2,
	"poor": -2, "popular": 3, "positive": 2, "postpone": -1, "poverty": -1,
	"powerful": 2, "praise": 3, "praised": 3, "prestigious": 2,
	"pretty": 1, "prevent": -1, "problem": -2, "problems": -2,
	"progress": 2, "promise": 1, "promote": 1, "prosecute": -1,
	"prosperity": 3, "protect": 1, "protest": -2, "proud": 2,
	"punish": -2, "punished": -2, "punishment": -2,
	"quit": -1,
	"rage": -2, "reassure": 1, "recommend": 2, "recommended": 2,
	"recover": 2, "refuse": -2, "refused": -2, "regret": -2, "reject": -1,
	"rejected": -1, "rejoice": 4, "relaxed": 2, "relief": 1, "relieve": 1,
	"remarkable": 2, "rescue": 2, "resolve": 2, "respect": 2,
	"respected": 2, "restore": 1, "reward": 2, "rewarded": 2, "rich": 2,
	"ridiculous": -3, "rig": -1, "rigged": -1, "risk": -2, "risky": -2,
	"rob": -2, "robbed": -2, "romantic": 2, "rotten": -3, "rude": -2,
	"ruin": -2, "ruined": -2,
	"sad": -2, "sadly": -2, "sadness": -2, "safe": 1, "safety": 1,
	"satisfied": 2, "save": 2, "saved": 2, "scam": -2, "scandal": -3,
	"scare": -2, "scared": -2, "scary": -2, "secure": 2, "selfish": -3,
	"sentence": -2, "sentenced": -2, "serene": 2, "severe": -2,
	"shame": -2, "shameful": -2, "share": 1, "shock": -2, "shocked": -2,
	"shocking": -2, "shoot": -1, "sick": -2, "significance": 1,
	"significant": 1, "silly": -1, "sincere": 2, "sinister": -2,
	"slam": -2, "smart": 1, "smile": 2, "smiling": 2, "solution": 1,
	"solve": 1, "solved": 1, "sorrow": -2, "sorry": -1, "spam": -2,
	"spectacular": 5, "splendid": 3, "stab": -2, "stable": 2, "steal": -2,
	"stolen": -2, "stop": -1, "stopped": -1, "strange": -1, "stress": -1,
	"stressed": -2, "strike": -1, "strong": 2, "struggle": -2,
	"struggling": -2, "stunning": 4, "stupid": -2, "succeed": 3,
	"succeeded": 3, "success": 2, "successful": 3, "suffer": -2,
	"suffered": -2, "suffering": -2, "suicide": -2, "sunshine": 2,
	"super": 3, "superb": 5, "superior": 2, "support": 2, "supported": 2,
	"surprise": 1, "surprised": 1, "survive": 2, "survived": 2,
	"suspect": -1, "suspicious": -2, "sweet": 2, "sympathy": 2,
	"terrible": -3, "terrific": 4, "terrified": -3, "terror": -3,
	"terrorist": -2, "thank": 2, "thankful": 2, "thanks": 2, "threat": -2,
	"threaten": -2, "threatened": -2, "thrilled": 5, "thrilling": 3,
	"tired": -2, "tolerant": 2, "top": 2, "tornado": -2, "torture": -4,
	"tortured": -4, "toxic": -3, "tragedy": -2, "tragic": -2, "trap": -1,
	"trapped": -2, "trauma": -3, "triumph": 4, "trouble": -2,
	"troubled": -2, "trust": 1, "trusted": 2, "truthful": 2,
	"ugly": -3, "unacceptable": -2, "unbelievable": -1, "uncertain": -1,
	"uncomfortable": -2, "unemployment": -2, "unfair": -2, "unfortunate": -2,
	"unhappy": -2, "unhealthy": -2, "united": 1, "unsafe": -2,
	"unstable": -2, "unsuccessful": -2, "upset": -2, "useful": 2,
	"useless": -2,
	"valuable": 2, "vibrant": 3, "vicious": -2, "victim": -3, "victory": 3,
	"violence": -3, "violent": -3, "vulnerable": -2,
	"war": -2, "warm": 1, "warning": -3, "waste": -1, "wasted": -2,
	"weak": -2, "wealth": 3, "wealthy": 2, "welcome": 2, "win": 4,
	"winner": 4, "winning": 4, "wisdom": 1, "wise": 2, "wish": 1,
	"woeful": -3, "won": 3, "wonderful": 4, "worn": -1, "worried": -3,
	"worry": -3, "worrying": -3, "worse": -3, "worst": -3, "worth": 2,
	"worthless": -2, "worthy": 2, "wow": 4, "wreck": -2, "wrong": -2,
	"young": 1,
	"zealous": 2,
}
