package html

var (
	Index = `<!doctype html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1, shrink-to-fit=no">

    <link rel="stylesheet" href="https://maxcdn.bootstrapcdn.com/bootstrap/4.0.0/css/bootstrap.min.css"
          integrity="sha384-Gn5384xqQ1aoWXA+058RXPxPg6fy4IWvTNh0E263XmFcJlSAwiGgFAW/dAiS6JXm" crossorigin="anonymous">

    <title>Documents</title>
</head>
<body>

<div class="jumbotron d-flex align-items-center">
    <div class="container">
        <a href="/"><h1>Documents</h1></a>
    </div>
</div>

<div class="d-flex align-items-center">
    <div class="container">
        <form id="add-form">
            <div class="form-group">
                <label for="body">New document</label>
                <textarea class="form-control" id="body" rows="4">{"name": "Alice"}</textarea>
                <small class="form-text text-muted">Any JSON object. Include a <code>_rev</code> and pick an id below to update instead.</small>
            </div>
            <div class="form-group">
                <label for="id">Id (updates only)</label>
                <input type="text" class="form-control" id="id">
            </div>
            <button type="submit" class="btn btn-primary">Save</button>
        </form>
        <div id="status" class="mt-3 text-muted"></div>
        <table class="table mt-3">
            <thead>
            <tr>
                <th scope="col">Id</th>
                <th scope="col">Rev</th>
                <th scope="col">Body</th>
                <th scope="col"></th>
            </tr>
            </thead>
            <tbody id="rows"></tbody>
        </table>
    </div>
</div>

<script>
    const statusEl = document.getElementById("status");

    async function call(method, url, body) {
        const init = {method: method, headers: {"Content-Type": "application/json"}};
        if (body !== undefined) {
            init.body = body;
        }
        const resp = await fetch(url, init);
        const json = await resp.json();
        if (!resp.ok) {
            throw new Error(json.error);
        }
        return json;
    }

    function cell(text) {
        const td = document.createElement("td");
        td.textContent = text;
        return td;
    }

    async function refresh() {
        try {
            const docs = await call("GET", "/api/data");
            const rows = document.getElementById("rows");
            rows.innerHTML = "";
            docs.forEach(function (doc) {
                const tr = document.createElement("tr");
                tr.appendChild(cell(doc._id));
                tr.appendChild(cell(doc._rev));
                tr.appendChild(cell(JSON.stringify(doc)));
                const del = document.createElement("button");
                del.className = "btn btn-sm btn-danger";
                del.textContent = "Delete";
                del.onclick = async function () {
                    try {
                        const params = new URLSearchParams({id: doc._id, rev: doc._rev});
                        await call("DELETE", "/api/delete?" + params.toString());
                        statusEl.textContent = "Deleted " + doc._id;
                    } catch (e) {
                        statusEl.textContent = e.message;
                    }
                    refresh();
                };
                const td = document.createElement("td");
                td.appendChild(del);
                tr.appendChild(td);
                rows.appendChild(tr);
            });
        } catch (e) {
            statusEl.textContent = e.message;
        }
    }

    document.getElementById("add-form").onsubmit = async function (ev) {
        ev.preventDefault();
        const body = document.getElementById("body").value;
        const id = document.getElementById("id").value.trim();
        try {
            const result = id.length > 0 ?
                await call("PUT", "/api/update/" + encodeURIComponent(id), body) :
                await call("POST", "/api/add", body);
            statusEl.textContent = "Saved " + result.id + " at " + result.rev;
        } catch (e) {
            statusEl.textContent = e.message;
        }
        refresh();
    };

    refresh();
</script>
</body>
</html>
`
)
