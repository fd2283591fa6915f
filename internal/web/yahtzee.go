package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func Yahtzee(data YahtzeeData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		gameID := templ.EscapeString(data.GameID)
		_, _ = io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Yahtzee — Scorekeeper</title>
    <link rel="stylesheet" href="/static/styles.css"/>
  </head>
  <body>
    <main class="shell">
      <header class="hero">
        <span class="tag">Yahtzee</span>
        <h1 id="turnBanner">Waiting for players</h1>
      </header>

      <section class="panel" id="lobbyPanel">
        <form id="joinForm" class="join-form">
          <input name="name" placeholder="Player name" autocomplete="off" required/>
          <button type="submit" class="secondary">Add player</button>
        </form>
        <button id="startGame" class="primary">Start game</button>
        <div id="lobbyResult" class="result"></div>
      </section>

      <section class="panel">
        <table id="card" class="score-card">
          <thead><tr id="cardHead"><th>Category</th></tr></thead>
          <tbody id="cardBody"></tbody>
        </table>
      </section>

      <section class="panel game-controls">
        <button id="nextTurn" class="secondary">Next turn</button>
        <button id="endGame" class="danger">End game</button>
      </section>
    </main>

    <script>
      const gameID = "`+gameID+`";
      const apiBase = "/api/yahtzee/" + encodeURIComponent(gameID);
      let state = null;

      const labels = {
        ones: "Ones", twos: "Twos", threes: "Threes", fours: "Fours",
        fives: "Fives", sixes: "Sixes", three_of_a_kind: "Three of a kind",
        four_of_a_kind: "Four of a kind", full_house: "Full house",
        small_straight: "Small straight", large_straight: "Large straight",
        yahtzee: "Yahtzee", chance: "Chance"
      };

      function render(snapshot) {
        state = snapshot;
        const banner = document.getElementById("turnBanner");
        if (snapshot.is_game_over) {
          banner.textContent = "Game over";
        } else if (snapshot.is_game_started) {
          const current = snapshot.players[snapshot.current_turn];
          banner.textContent = current ? current.name + "'s turn" : "In progress";
        } else {
          banner.textContent = snapshot.players.length ? "Ready to start" : "Waiting for players";
        }
        document.getElementById("lobbyPanel").classList.toggle("hidden", snapshot.is_game_started);

        const head = document.getElementById("cardHead");
        head.innerHTML = "<th>Category</th>";
        for (const player of snapshot.players) {
          const cell = document.createElement("th");
          cell.textContent = player.name;
          if (player.color) cell.style.color = player.color;
          head.appendChild(cell);
        }

        const body = document.getElementById("cardBody");
        body.innerHTML = "";
        for (const category of snapshot.categories) {
          const row = document.createElement("tr");
          const name = document.createElement("td");
          name.textContent = labels[category] || category;
          row.appendChild(name);
          for (const player of snapshot.players) {
            const cell = document.createElement("td");
            const scores = snapshot.scores[player.id] || {};
            if (category in scores) {
              cell.textContent = scores[category];
            } else {
              cell.textContent = "-";
              cell.classList.add("open");
              cell.addEventListener("click", () => promptScore(player, category));
            }
            row.appendChild(cell);
          }
          body.appendChild(row);
        }
        appendTotalsRows(body, snapshot);
      }

      function appendTotalsRows(body, snapshot) {
        const rows = [
          ["Upper bonus", (t) => t.upper_bonus],
          ["Grand total", (t) => t.grand_total]
        ];
        for (const [label, pick] of rows) {
          const row = document.createElement("tr");
          row.classList.add("totals");
          const name = document.createElement("td");
          name.textContent = label;
          row.appendChild(name);
          for (const player of snapshot.players) {
            const cell = document.createElement("td");
            const totals = snapshot.totals[player.id];
            cell.textContent = totals ? pick(totals) : 0;
            row.appendChild(cell);
          }
          body.appendChild(row);
        }
      }

      async function promptScore(player, category) {
        const raw = window.prompt("Score for " + player.name + " — " + (labels[category] || category));
        if (raw === null) return;
        const value = raw.trim() === "" ? null : Number(raw);
        await post("score", { player_id: player.id, category: category, value: value });
      }

      async function post(path, body) {
        const res = await fetch(apiBase + "/" + path, {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: JSON.stringify(body || {})
        });
        const data = await res.json();
        if (!res.ok) {
          document.getElementById("lobbyResult").textContent = data.error || "Request failed.";
          return;
        }
        render(data);
      }

      document.getElementById("joinForm").addEventListener("submit", async (event) => {
        event.preventDefault();
        const name = event.target.elements.name.value.trim();
        await post("join", { name: name });
        event.target.reset();
      });
      document.getElementById("startGame").addEventListener("click", () => post("start"));
      document.getElementById("nextTurn").addEventListener("click", () => post("turn"));
      document.getElementById("endGame").addEventListener("click", () => post("end"));

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
