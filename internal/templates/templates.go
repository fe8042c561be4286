// Package templates holds the canned site designs used in mock mode and the
// premium template catalogue used to steer external generation.
package templates

import "strings"

// Placeholder is replaced with the user's prompt in every template asset.
const Placeholder = "{PROMPT}"

// DefaultID is used whenever a template id is missing or unknown.
const DefaultID = "modern"

// Triple is one canned design: a page, its stylesheet and its script.
type Triple struct {
	HTML string
	CSS  string
	JS   string
	// Style is a short description of the design, passed to the model as
	// guidance when generating instead of substituting.
	Style string
}

// Substitute returns a copy of t with every Placeholder replaced by prompt.
// The prompt is inserted verbatim, without any HTML or JS escaping.
func (t Triple) Substitute(prompt string) Triple {
	return Triple{
		HTML:  strings.ReplaceAll(t.HTML, Placeholder, prompt),
		CSS:   strings.ReplaceAll(t.CSS, Placeholder, prompt),
		JS:    strings.ReplaceAll(t.JS, Placeholder, prompt),
		Style: t.Style,
	}
}

var triples = map[string]Triple{
	"modern":   modern,
	"classic":  classic,
	"creative": creative,
}

// Get returns the triple for id, falling back to the modern design.
func Get(id string) Triple {
	if t, ok := triples[id]; ok {
		return t
	}
	return triples[DefaultID]
}

// Known reports whether id names one of the canned designs.
func Known(id string) bool {
	_, ok := triples[id]
	return ok
}

// IDs lists the template ids in a stable order.
func IDs() []string {
	return []string{"modern", "classic", "creative"}
}

var modern = Triple{
	Style: "Modern: clean layout, bold sans-serif typography, a gradient header and card-based sections.",
	HTML: `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{PROMPT}</title>
    <link rel="stylesheet" href="style.css">
</head>
<body>
    <header class="modern-header">
        <nav class="modern-nav">
            <span class="modern-logo">{PROMPT}</span>
            <ul>
                <li><a href="#features">Features</a></li>
                <li><a href="#about">About</a></li>
                <li><a href="#contact">Contact</a></li>
            </ul>
        </nav>
        <div class="modern-hero">
            <h1>{PROMPT}</h1>
            <p>Built for people who like things simple and fast.</p>
            <button id="cta" class="modern-button">Get started</button>
        </div>
    </header>
    <main>
        <section id="features" class="modern-cards">
            <article class="modern-card"><h2>Fast</h2><p>Loads in a blink on any device.</p></article>
            <article class="modern-card"><h2>Clear</h2><p>Everything you need, nothing you don't.</p></article>
            <article class="modern-card"><h2>Friendly</h2><p>Designed around real people.</p></article>
        </section>
        <section id="about" class="modern-about">
            <h2>About</h2>
            <p>{PROMPT}</p>
        </section>
        <section id="contact" class="modern-contact">
            <h2>Contact</h2>
            <form id="contact-form">
                <input type="email" name="email" placeholder="you@example.com" required>
                <button type="submit" class="modern-button">Send</button>
            </form>
            <p id="form-status" aria-live="polite"></p>
        </section>
    </main>
    <footer class="modern-footer">&copy; <span id="year"></span> {PROMPT}</footer>
    <script src="index.js"></script>
</body>
</html>
`,
	CSS: `/* {PROMPT} - modern theme */
:root {
    --primary: #1a73e8;
    --accent: #ff6f61;
    --bg: #f9fafb;
    --text: #1f2933;
}

* { box-sizing: border-box; margin: 0; padding: 0; }

body {
    font-family: "Inter", system-ui, sans-serif;
    background: var(--bg);
    color: var(--text);
    line-height: 1.6;
}

.modern-header {
    background: linear-gradient(135deg, var(--primary), var(--accent));
    color: #fff;
    padding: 1.5rem 2rem 4rem;
}

.modern-nav { display: flex; justify-content: space-between; align-items: center; }
.modern-nav ul { display: flex; gap: 1.5rem; list-style: none; }
.modern-nav a { color: #fff; text-decoration: none; }
.modern-logo { font-weight: 700; font-size: 1.25rem; }

.modern-hero { max-width: 720px; margin: 3rem auto 0; text-align: center; }
.modern-hero h1 { font-size: 2.5rem; margin-bottom: 1rem; }

.modern-button {
    background: #fff;
    color: var(--primary);
    border: none;
    border-radius: 999px;
    padding: 0.75rem 1.75rem;
    font-weight: 600;
    cursor: pointer;
    transition: transform 0.2s ease;
}
.modern-button:hover { transform: translateY(-2px); }

.modern-cards {
    display: grid;
    grid-template-columns: repeat(auto-fit, minmax(220px, 1fr));
    gap: 1.5rem;
    max-width: 1080px;
    margin: -2rem auto 3rem;
    padding: 0 2rem;
}

.modern-card {
    background: #fff;
    border-radius: 16px;
    box-shadow: 0 10px 30px rgba(0, 0, 0, 0.08);
    padding: 1.5rem;
}

.modern-about, .modern-contact { max-width: 720px; margin: 0 auto 3rem; padding: 0 2rem; }
.modern-contact form { display: flex; gap: 0.75rem; margin-top: 1rem; }
.modern-contact input { flex: 1; padding: 0.75rem; border: 1px solid #d0d7de; border-radius: 8px; }
.modern-contact .modern-button { background: var(--primary); color: #fff; }

.modern-footer { text-align: center; padding: 2rem; color: #6b7280; }

@media (max-width: 600px) {
    .modern-nav ul { display: none; }
    .modern-hero h1 { font-size: 1.8rem; }
}
`,
	JS: `// {PROMPT} - modern theme
document.addEventListener("DOMContentLoaded", () => {
    console.log("{PROMPT} loaded!");

    document.getElementById("year").textContent = new Date().getFullYear();

    document.getElementById("cta").addEventListener("click", () => {
        document.getElementById("features").scrollIntoView({ behavior: "smooth" });
    });

    const form = document.getElementById("contact-form");
    form.addEventListener("submit", (event) => {
        event.preventDefault();
        document.getElementById("form-status").textContent = "Thanks! We'll be in touch.";
        form.reset();
    });
});
`,
}

var classic = Triple{
	Style: "Classic: corporate and trustworthy, serif headings, a restrained navy palette and information-first layout.",
	HTML: `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{PROMPT}</title>
    <link rel="stylesheet" href="style.css">
</head>
<body>
    <header class="classic-header">
        <h1 class="classic-title">{PROMPT}</h1>
        <nav class="classic-nav">
            <a href="#services">Services</a>
            <a href="#history">History</a>
            <a href="#contact">Contact</a>
        </nav>
    </header>
    <main class="classic-main">
        <section id="services">
            <h2>Our Services</h2>
            <ul class="classic-list">
                <li>Consulting</li>
                <li>Planning</li>
                <li>Support</li>
            </ul>
        </section>
        <section id="history">
            <h2>Our History</h2>
            <p>{PROMPT} has served its community with care and consistency.</p>
        </section>
        <section id="contact">
            <h2>Contact</h2>
            <address>Main Street 1, Springfield<br>info@example.com</address>
        </section>
    </main>
    <footer class="classic-footer">
        <p>{PROMPT} &middot; <a href="#" id="back-to-top">Back to top</a></p>
    </footer>
    <script src="index.js"></script>
</body>
</html>
`,
	CSS: `/* {PROMPT} - classic theme */
body {
    font-family: Georgia, "Times New Roman", serif;
    background: #fdfdfb;
    color: #222;
    margin: 0;
}

.classic-header {
    background: #1c2a48;
    color: #f5f1e6;
    padding: 2rem 1rem;
    text-align: center;
    border-bottom: 4px solid #b89b5e;
}

.classic-title { margin: 0 0 1rem; letter-spacing: 0.05em; }

.classic-nav a {
    color: #f5f1e6;
    margin: 0 1rem;
    text-decoration: none;
    font-variant: small-caps;
}
.classic-nav a:hover { text-decoration: underline; }

.classic-main { max-width: 860px; margin: 2rem auto; padding: 0 1rem; }
.classic-main h2 { color: #1c2a48; border-bottom: 1px solid #ddd; padding-bottom: 0.3rem; }
.classic-list { line-height: 2; }

.classic-footer {
    background: #f0ede4;
    text-align: center;
    padding: 1.5rem;
    font-size: 0.9rem;
}
`,
	JS: `// {PROMPT} - classic theme
document.addEventListener("DOMContentLoaded", function () {
    console.log("{PROMPT} loaded!");

    var backToTop = document.getElementById("back-to-top");
    backToTop.addEventListener("click", function (event) {
        event.preventDefault();
        window.scrollTo({ top: 0, behavior: "smooth" });
    });
});
`,
}

var creative = Triple{
	Style: "Creative: colourful and playful, animated elements, asymmetric blocks and interactive touches.",
	HTML: `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{PROMPT}</title>
    <link rel="stylesheet" href="style.css">
</head>
<body>
    <div class="creative-blob creative-blob-a"></div>
    <div class="creative-blob creative-blob-b"></div>
    <header class="creative-header">
        <h1 class="creative-title">{PROMPT}</h1>
        <p class="creative-tagline">Colour outside the lines.</p>
    </header>
    <main class="creative-grid">
        <div class="creative-tile" data-color="#ff6f61">Ideas</div>
        <div class="creative-tile" data-color="#6c5ce7">Play</div>
        <div class="creative-tile" data-color="#00b894">Make</div>
        <div class="creative-tile" data-color="#fdcb6e">Share</div>
    </main>
    <footer class="creative-footer">{PROMPT}</footer>
    <script src="index.js"></script>
</body>
</html>
`,
	CSS: `/* {PROMPT} - creative theme */
body {
    font-family: "Trebuchet MS", "Segoe UI", sans-serif;
    background: #111;
    color: #fafafa;
    margin: 0;
    overflow-x: hidden;
}

.creative-blob {
    position: fixed;
    width: 320px;
    height: 320px;
    border-radius: 50%;
    filter: blur(80px);
    opacity: 0.5;
    z-index: -1;
    animation: float 12s ease-in-out infinite alternate;
}
.creative-blob-a { background: #ff6f61; top: -80px; left: -80px; }
.creative-blob-b { background: #6c5ce7; bottom: -80px; right: -80px; animation-delay: -6s; }

@keyframes float {
    from { transform: translate(0, 0) scale(1); }
    to { transform: translate(60px, 40px) scale(1.2); }
}

.creative-header { text-align: center; padding: 5rem 1rem 3rem; }
.creative-title { font-size: 3rem; transform: rotate(-2deg); }
.creative-tagline { font-style: italic; opacity: 0.8; }

.creative-grid {
    display: grid;
    grid-template-columns: repeat(auto-fit, minmax(160px, 1fr));
    gap: 1rem;
    max-width: 900px;
    margin: 0 auto 4rem;
    padding: 0 1rem;
}

.creative-tile {
    background: #222;
    border-radius: 24px 4px 24px 4px;
    padding: 3rem 1rem;
    text-align: center;
    font-size: 1.4rem;
    cursor: pointer;
    transition: transform 0.3s ease, background 0.3s ease;
}
.creative-tile:hover { transform: scale(1.05) rotate(1deg); }

.creative-footer { text-align: center; padding: 2rem; opacity: 0.6; }
`,
	JS: `// {PROMPT} - creative theme
document.addEventListener("DOMContentLoaded", () => {
    console.log("{PROMPT} loaded!");

    document.querySelectorAll(".creative-tile").forEach((tile) => {
        tile.addEventListener("click", () => {
            const active = tile.classList.toggle("active");
            tile.style.background = active ? tile.dataset.color : "";
        });
    });
});
`,
}
