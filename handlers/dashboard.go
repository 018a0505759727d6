package handlers

import (
	"fmt"
	"net/http"
	"time"
)

// DashboardHandler serves the single dashboard page. The page drives the
// periodic refresh: it re-fetches /summary and /feed every refresh interval,
// which re-checks the TTL cache without bypassing it. The refresh button
// posts to /refresh first, which does bypass it.
type DashboardHandler struct {
	refreshInterval time.Duration
}

func NewDashboardHandler(refreshInterval time.Duration) *DashboardHandler {
	return &DashboardHandler{refreshInterval: refreshInterval}
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, dashboardHTML, h.refreshInterval.Milliseconds())
}

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Reddit Sentiment Analytics</title>
<style>
	* { margin: 0; padding: 0; box-sizing: border-box; }
	body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', system-ui, sans-serif; background: #f3f4f6; padding: 20px; }
	.container { max-width: 1100px; margin: 0 auto; }
	h1 { font-size: 1.8em; margin-bottom: 4px; }
	.refresh-info { background: #e5e7eb; padding: 10px; border-radius: 6px; margin: 12px 0; font-size: 0.9em; }
	.warning { background: #fef3c7; border: 1px solid #f59e0b; padding: 12px; border-radius: 6px; margin: 12px 0; display: none; }
	.kpis { display: grid; grid-template-columns: repeat(4, 1fr); gap: 12px; margin: 16px 0; }
	.kpi { background: white; border: 1px solid rgba(128,128,128,0.2); border-radius: 6px; padding: 15px; }
	.kpi .label { color: #6b7280; font-size: 0.85em; }
	.kpi .value { font-size: 1.5em; font-weight: 600; }
	.bars { background: white; border-radius: 6px; padding: 20px; margin: 16px 0; }
	.bar-row { margin-bottom: 15px; }
	.bar-head { display: flex; justify-content: space-between; margin-bottom: 5px; font-weight: 600; }
	.bar-track { width: 100%%; background: rgba(128,128,128,0.2); border-radius: 10px; height: 10px; }
	.bar-fill { height: 10px; border-radius: 10px; }
	.controls { display: flex; gap: 10px; margin: 16px 0; flex-wrap: wrap; }
	select, button { padding: 10px; border-radius: 6px; border: 1px solid #d1d5db; font-size: 0.95em; }
	button { background: #6366f1; color: white; border: none; cursor: pointer; font-weight: 600; }
	.card { background: white; border: 1px solid rgba(128,128,128,0.2); border-radius: 6px; padding: 15px; margin-bottom: 10px; }
	.card .meta { color: #6b7280; font-size: 0.9em; margin-bottom: 6px; }
	.badge { float: right; font-weight: 700; font-size: 0.8em; padding: 2px 8px; border-radius: 10px; }
	.badge.positive { background: #86EFAC; }
	.badge.negative { background: #FCA5A5; }
	.badge.neutral { background: #D1D5DB; }
	.empty { background: #dbeafe; padding: 12px; border-radius: 6px; display: none; }
</style>
</head>
<body>
<div class="container">
	<h1>Real-Time Reddit Sentiment Analytics</h1>
	<div class="refresh-info" id="freshness">Loading...</div>
	<div class="warning" id="warning"></div>
	<div class="empty" id="empty">No data found. Please run the producer and consumer scripts.</div>

	<div class="kpis">
		<div class="kpi"><div class="label">Total Analyzed</div><div class="value" id="kpi-total">-</div></div>
		<div class="kpi"><div class="label">Avg Sentiment (VADER)</div><div class="value" id="kpi-vader">-</div></div>
		<div class="kpi"><div class="label">Dominant Sentiment</div><div class="value" id="kpi-dominant">-</div></div>
		<div class="kpi"><div class="label">Active Subreddits</div><div class="value" id="kpi-subs">-</div></div>
	</div>

	<div class="bars" id="bars">
		<h3>Sentiment Distribution</h3>
		<div class="bar-row"><div class="bar-head"><span>Positive</span><span id="pct-positive">0%%</span></div>
			<div class="bar-track"><div class="bar-fill" id="bar-positive" style="background:#34D399;width:0"></div></div></div>
		<div class="bar-row"><div class="bar-head"><span>Neutral</span><span id="pct-neutral">0%%</span></div>
			<div class="bar-track"><div class="bar-fill" id="bar-neutral" style="background:#9CA3AF;width:0"></div></div></div>
		<div class="bar-row"><div class="bar-head"><span>Negative</span><span id="pct-negative">0%%</span></div>
			<div class="bar-track"><div class="bar-fill" id="bar-negative" style="background:#F87171;width:0"></div></div></div>
	</div>

	<div class="controls">
		<select id="f-subreddit"><option value="all">All subreddits</option></select>
		<select id="f-type">
			<option value="all">Posts and comments</option>
			<option value="post">Posts</option>
			<option value="comment">Comments</option>
		</select>
		<select id="f-sentiment">
			<option value="all">All sentiments</option>
			<option value="positive">Positive</option>
			<option value="neutral">Neutral</option>
			<option value="negative">Negative</option>
		</select>
		<button id="refresh">Refresh Data Now</button>
	</div>

	<h3 id="feed-title">Recent Live Feed</h3>
	<div id="feed"></div>
</div>

<script>
const REFRESH_INTERVAL_MS = %d;

function query() {
	const params = new URLSearchParams({
		subreddit: document.getElementById('f-subreddit').value,
		type: document.getElementById('f-type').value,
		sentiment: document.getElementById('f-sentiment').value,
	});
	return params.toString();
}

async function reload() {
	const warning = document.getElementById('warning');
	try {
		const [summaryRes, feedRes] = await Promise.all([
			fetch('/summary?' + query()),
			fetch('/feed?' + query()),
		]);
		if (!summaryRes.ok || !feedRes.ok) {
			const body = await (summaryRes.ok ? feedRes : summaryRes).json();
			warning.textContent = body.error || 'Data source unavailable.';
			warning.style.display = 'block';
			return;
		}
		warning.style.display = 'none';
		render(await summaryRes.json(), await feedRes.json());
	} catch (err) {
		warning.textContent = 'Dashboard backend unreachable: ' + err;
		warning.style.display = 'block';
	}
}

function render(summary, feed) {
	document.getElementById('empty').style.display = summary.noData ? 'block' : 'none';
	document.getElementById('freshness').textContent =
		'Data last loaded: ' + new Date(summary.loadedAt).toLocaleString() +
		' | Total records: ' + summary.total +
		(summary.fromCache ? ' | served from cache' : ' | freshly loaded');

	document.getElementById('kpi-total').textContent = summary.total;
	document.getElementById('kpi-vader').textContent = summary.avgVaderScore.toFixed(2);
	document.getElementById('kpi-dominant').textContent = summary.dominantSentiment || '-';
	document.getElementById('kpi-subs').textContent = summary.activeSubreddits;

	for (const label of ['positive', 'neutral', 'negative']) {
		const pct = summary.total ? Math.round((summary.counts[label] || 0) / summary.total * 100) : 0;
		document.getElementById('pct-' + label).textContent = pct + '%%';
		document.getElementById('bar-' + label).style.width = pct + '%%';
	}

	const select = document.getElementById('f-subreddit');
	const current = select.value;
	select.innerHTML = '<option value="all">All subreddits</option>';
	for (const sub of summary.subreddits) {
		const opt = document.createElement('option');
		opt.value = sub;
		opt.textContent = 'r/' + sub;
		select.appendChild(opt);
	}
	select.value = [...select.options].some(o => o.value === current) ? current : 'all';

	document.getElementById('feed-title').textContent = 'Recent Live Feed (' + feed.total + ' items selected)';
	const container = document.getElementById('feed');
	container.innerHTML = '';
	for (const rec of feed.records.slice(0, 10)) {
		const card = document.createElement('div');
		card.className = 'card';
		const meta = document.createElement('div');
		meta.className = 'meta';
		meta.textContent = 'r/' + rec.subreddit + ' • u/' + rec.author + ' • ' + rec.type;
		const badge = document.createElement('span');
		badge.className = 'badge ' + rec.sentiment;
		badge.textContent = rec.sentiment.toUpperCase();
		meta.appendChild(badge);
		const title = document.createElement('div');
		title.textContent = rec.title;
		title.style.fontWeight = '600';
		const score = document.createElement('div');
		score.className = 'meta';
		score.textContent = 'VADER: ' + rec.vaderScore.toFixed(3);
		card.append(meta, title, score);
		if (rec.permalink) {
			const link = document.createElement('a');
			link.href = rec.permalink;
			link.textContent = 'View on Reddit';
			card.appendChild(link);
		}
		container.appendChild(card);
	}
}

document.getElementById('refresh').addEventListener('click', async () => {
	await fetch('/refresh', { method: 'POST' });
	reload();
});
for (const id of ['f-subreddit', 'f-type', 'f-sentiment']) {
	document.getElementById(id).addEventListener('change', reload);
}

reload();
setInterval(reload, REFRESH_INTERVAL_MS);
</script>
</body>
</html>`
