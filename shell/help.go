package shell

const usage = `Commands:
  new [width height]   start a fresh game (default board size from config)
  show | s             display the board
  moves                list legal moves for the player on turn
  play <row> <col>     move the player on turn to that square
  engine               let the configured engine move for the player on turn
  set key=value ...    change config (e.g. set player1=ab-mobility)
  autoplay [n]         run n computer vs computer games and show the report
  help                 this message
  exit | bye           quit

A game of Isolation: each player first places anywhere on the board, then
moves like a chess knight. Visited squares are blocked for the rest of the
game. If you cannot move on your turn, you lose.`
