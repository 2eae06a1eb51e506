package logs

const createMatchTable = `
CREATE TABLE IF NOT EXISTS matches (
  day string not null,
  id integer not null,
  time datetime,
  width int,
  height int,
  player1 varchar,
  player2 varchar,
  winner string,
  moves int,
  final string
)`

const createPlayerView = `
CREATE VIEW IF NOT EXISTS player_matches (
  day, id, player, opponent, seat, win, width, height, moves
) AS
SELECT day, id, player2, player1, 'player2',
       CASE winner WHEN 'player1' THEN 'lose' WHEN 'player2' THEN 'win' ELSE 'tie' END,
       width, height, moves
 FROM matches
UNION
SELECT day, id, player1, player2, 'player1',
       CASE winner WHEN 'player1' THEN 'win' WHEN 'player2' THEN 'lose' ELSE 'tie' END,
       width, height, moves
 FROM matches
`

const insertStmt = `
INSERT INTO matches (day, id, time, width, height, player1, player2, winner, moves, final)
VALUES (:day, :id, :time, :width, :height, :player1, :player2, :winner, :moves, :final)
`

const selectRecent = `
SELECT day, id, time, width, height, player1, player2, winner, moves, final
  FROM matches
 ORDER BY time DESC
 LIMIT ?
`
