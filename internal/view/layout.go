package view

import "html/template"

// Layout is the full storefront document: current page and modal fragments
// plus the client script that forwards interactions to the UI gateway and
// applies fragments pushed over the WebSocket.
var layoutTemplate = mustTemplate("layout", `<!DOCTYPE html>
<html lang="ru">
<head>
	<meta charset="utf-8" />
	<title>Веб-ларёк</title>
	<link rel="stylesheet" href="/static/styles.css" />
</head>
<body>
{{.Page}}
{{.Modal}}
<script>
(function () {
	var routes = {
		'basket:open': function () { return ['/ui/basket/open']; },
		'modal:close': function () { return ['/ui/modal/close']; },
		'card:select': function (el) { return ['/ui/cards/' + el.dataset.id + '/select']; },
		'card:buy': function () { return ['/ui/preview/button']; },
		'basket:delete': function (el) { return ['/ui/basket/items/' + el.dataset.id + '/delete']; },
		'order:open': function () { return ['/ui/basket/checkout']; },
		'order.card:selected': function () { return ['/ui/order/payment/card']; },
		'order.cash:selected': function () { return ['/ui/order/payment/cash']; },
		'order:submit': function () { return ['/ui/order/submit']; },
		'contacts:submit': function () { return ['/ui/contacts/submit']; },
		'success:close': function () { return ['/ui/success/close']; }
	};
	function post(url, body) {
		fetch(url, {
			method: 'POST',
			headers: { 'Content-Type': 'application/json' },
			body: body ? JSON.stringify(body) : null
		});
	}
	document.addEventListener('click', function (e) {
		var el = e.target.closest('[data-action]');
		if (!el || el.tagName === 'INPUT' || el.tagName === 'FORM') return;
		if (el.id === 'modal' && e.target !== el) return;
		var route = routes[el.dataset.action];
		if (route) post.apply(null, route(el.closest('[data-id]') || el));
	});
	document.addEventListener('input', function (e) {
		var el = e.target;
		var action = el.dataset.action;
		if (!action) return;
		var form = action.split('.')[0];
		post('/ui/' + form + '/input', { field: el.name, value: el.value });
	});
	document.addEventListener('submit', function (e) {
		var route = routes[e.target.dataset.action];
		e.preventDefault();
		if (route) post.apply(null, route(e.target));
	});
	document.addEventListener('keyup', function (e) {
		if (e.key === 'Escape') post('/ui/modal/close');
	});
	var ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/ws');
	ws.onmessage = function (e) {
		e.data.split('\n').forEach(function (line) {
			var msg = JSON.parse(line);
			if (msg.type !== 'fragment') return;
			var el = document.getElementById(msg.data.target);
			if (el) el.outerHTML = msg.data.html;
		});
	};
})();
</script>
</body>
</html>`)

// RenderLayout assembles the full document from the current page and modal
// fragments.
func RenderLayout(page, modal template.HTML) template.HTML {
	return execute(layoutTemplate, struct {
		Page  template.HTML
		Modal template.HTML
	}{page, modal})
}
