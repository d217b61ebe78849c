package render

// Rules is the summary of the game returned by the game_rules tool and the
// console's help command.
const Rules = `PANDEMIC - RULES SUMMARY

OBJECTIVE:
Work together to discover cures for all four diseases (Blue, Yellow, Black,
Red) before the world is overrun.

YOU LOSE WHEN:
- The 8th outbreak is exceeded (a 9th outbreak happens)
- A disease needs more cubes than its supply of 24
- A player must draw a card and the player deck is empty

TURN STRUCTURE:
1. Take 4 actions
2. Draw 2 player cards (epidemics resolve immediately)
3. Discard down to 7 cards if needed
4. Infect as many cities as the infection rate

ACTIONS:
- drive: move to an adjacent city
- direct_flight: discard a city card to fly to that city
- charter_flight: discard the card of your current city to fly anywhere
- shuttle_flight: fly between two research stations
- build_station: discard the card of your current city to build a station
- treat_disease: remove one cube (all cubes if the disease is cured)
- share_knowledge: give or take the card of the city you share with a player
- discover_cure: at a station, discard 5 cards of one color
- pass: spend an action doing nothing
- operations_flight, dispatch, take_event: role abilities

ROLES:
- Contingency Planner: takes an event from the discard pile and stores it
- Dispatcher: moves other pawns, or any pawn to a city with another pawn
- Medic: treats all cubes of a color, clears cured diseases by presence
- Operations Expert: builds without a card, flies from a station once a turn
- Quarantine Specialist: no cubes are placed in or next to their city
- Researcher: may give any city card when sharing knowledge
- Scientist: needs only 4 cards to discover a cure

INFECTION:
Placing a 4th cube of one color in a city causes an outbreak instead: every
neighbour gains a cube of that color. A city outbreaks at most once per chain.

EPIDEMIC:
The infection rate rises, the bottom infection card gets 3 cubes, and the
infection discard pile is shuffled back on top of the infection deck.

EVENTS:
Event cards are played at any time between commands and cost no action:
Airlift, Forecast, Government Grant, One Quiet Night, Resilient Population.
`
