package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func Home() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Scorekeeper</title>
    <link rel="stylesheet" href="/static/styles.css"/>
  </head>
  <body>
    <main class="shell">
      <header class="hero">
        <span class="tag">Scorekeeper</span>
        <h1>Every game. One board.</h1>
        <p>Run a basketball or football scoreboard, or keep a Yahtzee card.</p>
      </header>

      <section class="panel">
        <div>
          <h2>New scoreboard</h2>
          <p>Pick a mode and name both teams.</p>
        </div>
        <form id="createForm" class="join-form">
          <select name="mode" id="modeSelect"></select>
          <input name="home" placeholder="Home team" autocomplete="off"/>
          <input name="away" placeholder="Away team" autocomplete="off"/>
          <button type="submit" class="primary">Create scoreboard</button>
        </form>
        <div id="createResult" class="result"></div>
      </section>

      <section class="panel">
        <div>
          <h2>New Yahtzee card</h2>
          <p>Start a shared score card and seat the players.</p>
        </div>
        <button id="createYahtzee" class="secondary">Create Yahtzee game</button>
        <div id="yahtzeeResult" class="result"></div>
      </section>

      <section class="panel">
        <h2>Active games</h2>
        <ul id="gameList" class="game-list"></ul>
      </section>
    </main>

    <script>
      const modeSelect = document.getElementById("modeSelect");
      const createForm = document.getElementById("createForm");
      const createResult = document.getElementById("createResult");
      const yahtzeeBtn = document.getElementById("createYahtzee");
      const yahtzeeResult = document.getElementById("yahtzeeResult");
      const gameList = document.getElementById("gameList");

      async function loadModes() {
        const res = await fetch("/api/modes");
        const data = await res.json();
        modeSelect.innerHTML = "";
        for (const mode of data.modes) {
          const option = document.createElement("option");
          option.value = mode.id;
          option.textContent = mode.label;
          modeSelect.appendChild(option);
        }
      }

      async function loadGames() {
        const res = await fetch("/api/games");
        const data = await res.json();
        gameList.innerHTML = "";
        for (const game of data.games) {
          const item = document.createElement("li");
          const link = document.createElement("a");
          const base = game.kind === "yahtzee" ? "/yahtzee/" : "/scoreboard/";
          link.href = base + encodeURIComponent(game.id);
          link.textContent = game.label + " (" + game.id + ")" + (game.over ? " — final" : "");
          item.appendChild(link);
          gameList.appendChild(item);
        }
      }

      createForm.addEventListener("submit", async (event) => {
        event.preventDefault();
        createResult.textContent = "Creating scoreboard...";
        const res = await fetch("/api/games", {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: JSON.stringify({
            mode: modeSelect.value,
            home_team: createForm.elements.home.value.trim(),
            away_team: createForm.elements.away.value.trim()
          })
        });
        const data = await res.json();
        if (!res.ok) {
          createResult.textContent = data.error || "Failed to create scoreboard.";
          return;
        }
        window.location.href = "/scoreboard/" + encodeURIComponent(data.game_id);
      });

      yahtzeeBtn.addEventListener("click", async () => {
        yahtzeeResult.textContent = "Creating game...";
        const res = await fetch("/api/yahtzee", { method: "POST" });
        const data = await res.json();
        if (!res.ok) {
          yahtzeeResult.textContent = data.error || "Failed to create game.";
          return;
        }
        window.location.href = "/yahtzee/" + encodeURIComponent(data.game_id);
      });

      loadModes();
      loadGames();
    </script>
  </body>
</html>
`)
		return nil
	})
}
