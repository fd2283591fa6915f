package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Scoreboard renders the live board shell. State arrives over the game's
// websocket; the controls post intents back to the API.
func Scoreboard(data ScoreboardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		gameID := templ.EscapeString(data.GameID)
		label := templ.EscapeString(data.Label)
		_, _ = io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>`+label+` — Scorekeeper</title>
    <link rel="stylesheet" href="/static/styles.css"/>
  </head>
  <body>
    <main class="shell board">
      <header class="hero">
        <span class="tag">`+label+`</span>
        <div class="clock-row">
          <span id="quarter" class="quarter">Q1</span>
          <span id="clock" class="clock">--:--</span>
          <span id="shotClock" class="shot-clock"></span>
        </div>
      </header>

      <section class="teams">
        <div class="team" id="homePanel">
          <h2 id="homeName">Home</h2>
          <div id="homeScore" class="score">0</div>
          <div id="homeTimeouts" class="timeouts"></div>
          <div class="controls" data-side="home"></div>
        </div>
        <div class="team" id="awayPanel">
          <h2 id="awayName">Away</h2>
          <div id="awayScore" class="score">0</div>
          <div id="awayTimeouts" class="timeouts"></div>
          <div class="controls" data-side="away"></div>
        </div>
      </section>

      <section class="panel game-controls">
        <button data-intent="start" class="primary">Start</button>
        <button data-intent="pause" class="secondary">Pause</button>
        <button data-intent="resume" class="secondary">Resume</button>
        <button data-intent="possession" class="secondary">Possession</button>
        <button data-intent="period" class="secondary">Next period</button>
        <button data-intent="reset" class="danger">Reset</button>
      </section>

      <section class="panel">
        <h2>Events</h2>
        <ul id="eventLog" class="event-log"></ul>
      </section>

      <div id="finalBanner" class="final hidden">Final</div>
    </main>

    <script>
      const gameID = "`+gameID+`";
      const apiBase = "/api/games/" + encodeURIComponent(gameID);

      function fmtClock(seconds) {
        if (seconds === null || seconds === undefined) return "";
        const m = Math.floor(seconds / 60);
        const s = seconds % 60;
        return m + ":" + String(s).padStart(2, "0");
      }

      function renderTeam(side, team) {
        document.getElementById(side + "Name").textContent = team.name;
        document.getElementById(side + "Score").textContent = team.score;
        document.getElementById(side + "Timeouts").textContent = "Timeouts: " + team.timeouts;
        const panel = document.getElementById(side + "Panel");
        if (team.color) panel.style.borderColor = team.color;
      }

      function renderActions(snapshot) {
        for (const el of document.querySelectorAll(".controls")) {
          const side = el.dataset.side;
          el.innerHTML = "";
          for (const action of snapshot.actions) {
            const btn = document.createElement("button");
            btn.textContent = action.label;
            btn.addEventListener("click", () => post("action", { side: side, action: action.id }));
            el.appendChild(btn);
          }
          const timeout = document.createElement("button");
          timeout.textContent = "Timeout";
          timeout.addEventListener("click", () => post("timeout", { side: side }));
          el.appendChild(timeout);
        }
      }

      function render(snapshot) {
        renderTeam("home", snapshot.home);
        renderTeam("away", snapshot.away);
        document.getElementById("quarter").textContent = "Q" + snapshot.quarter;
        document.getElementById("clock").textContent =
          snapshot.time_remaining === null ? "" : fmtClock(snapshot.time_remaining);
        document.getElementById("shotClock").textContent =
          snapshot.shot_clock === null ? "" : snapshot.shot_clock;
        document.getElementById("homePanel").classList.toggle("possession", snapshot.possession === "home");
        document.getElementById("awayPanel").classList.toggle("possession", snapshot.possession === "away");
        document.getElementById("finalBanner").classList.toggle("hidden", !snapshot.is_game_over);
        const log = document.getElementById("eventLog");
        log.innerHTML = "";
        for (const event of snapshot.events.slice(-12).reverse()) {
          const item = document.createElement("li");
          item.textContent = event.side + " " + event.action + " (" + event.points + ")";
          log.appendChild(item);
        }
        if (snapshot.actions) renderActions(snapshot);
      }

      async function post(path, body) {
        const res = await fetch(apiBase + "/" + path, {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: JSON.stringify(body || {})
        });
        if (res.ok) render(await res.json());
      }

      for (const btn of document.querySelectorAll("[data-intent]")) {
        btn.addEventListener("click", () => post(btn.dataset.intent));
      }

      const proto = window.location.protocol === "https:" ? "wss://" : "ws://";
      const socket = new WebSocket(proto + window.location.host + "/ws/games/" + encodeURIComponent(gameID));
      socket.addEventListener("message", (event) => render(JSON.parse(event.data)));

      fetch(apiBase).then((res) => res.json()).then(render);
    </script>
  </body>
</html>
`)
		return nil
	})
}
